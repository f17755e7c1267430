package pyast

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ClassDef is a class definition.
type ClassDef struct {
	node *sitter.Node
	src  []byte
}

// Name returns the class name.
func (c ClassDef) Name() string {
	return nodeText(c.node.ChildByFieldName("name"), c.src)
}

// Bases returns the declared base expressions, in order. Keyword
// arguments in the class head (metaclass=...) are not bases.
func (c ClassDef) Bases() []Expr {
	super := c.node.ChildByFieldName("superclasses")
	if super == nil {
		return nil
	}
	var bases []Expr
	for _, child := range namedChildren(super) {
		if child.Kind() == "keyword_argument" {
			continue
		}
		bases = append(bases, newExpr(child, c.src))
	}
	return bases
}

// Body returns the class body statements, in source order.
func (c ClassDef) Body() []Stmt {
	block := c.node.ChildByFieldName("body")
	if block == nil {
		return nil
	}
	var stmts []Stmt
	for _, child := range namedChildren(block) {
		stmts = append(stmts, newStmt(child, c.src))
	}
	return stmts
}

// StmtKind is the shape of a class-body statement. Docstrings, pass
// statements and everything else the extractors ignore are StmtOther.
type StmtKind int

const (
	StmtOther StmtKind = iota
	StmtAssign
	StmtFunc
)

// Stmt is one class-body statement.
type Stmt struct {
	kind       StmtKind
	node       *sitter.Node
	src        []byte
	decorators []*sitter.Node
}

func newStmt(node *sitter.Node, src []byte) Stmt {
	switch node.Kind() {
	case "function_definition":
		return Stmt{kind: StmtFunc, node: node, src: src}
	case "decorated_definition":
		def := node.ChildByFieldName("definition")
		if def == nil || def.Kind() != "function_definition" {
			break
		}
		var decorators []*sitter.Node
		for _, child := range namedChildren(node) {
			if child.Kind() == "decorator" {
				decorators = append(decorators, child)
			}
		}
		return Stmt{kind: StmtFunc, node: def, src: src, decorators: decorators}
	case "expression_statement":
		inner := namedChildren(node)
		if len(inner) == 1 && inner[0].Kind() == "assignment" {
			return Stmt{kind: StmtAssign, node: inner[0], src: src}
		}
	}
	return Stmt{kind: StmtOther, node: node, src: src}
}

// Kind returns the statement's shape.
func (s Stmt) Kind() StmtKind { return s.kind }

// Assign returns the assignment view. Valid when Kind is StmtAssign.
func (s Stmt) Assign() Assign { return Assign{node: s.node, src: s.src} }

// Func returns the function view. Valid when Kind is StmtFunc.
func (s Stmt) Func() FunctionDef {
	return FunctionDef{node: s.node, src: s.src, decorators: s.decorators}
}

// Assign is an assignment statement.
type Assign struct {
	node *sitter.Node
	src  []byte
}

// TargetIdent returns the first assignment target when it is a single
// identifier. Tuple or subscript targets report false.
func (a Assign) TargetIdent() (string, bool) {
	left := a.node.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return "", false
	}
	return nodeText(left, a.src), true
}

// Value returns the assigned expression. Chained assignments
// (a = b = expr) resolve to the final right-hand side.
func (a Assign) Value() Expr {
	right := a.node.ChildByFieldName("right")
	for right != nil && right.Kind() == "assignment" {
		right = right.ChildByFieldName("right")
	}
	return newExpr(right, a.src)
}

// FunctionDef is a function definition, with any decorators that were
// attached to it.
type FunctionDef struct {
	node       *sitter.Node
	src        []byte
	decorators []*sitter.Node
}

// Name returns the function name.
func (f FunctionDef) Name() string {
	return nodeText(f.node.ChildByFieldName("name"), f.src)
}

// Param is one declared positional parameter.
type Param struct {
	Name       string
	Default    Expr
	HasDefault bool
}

// Params returns the positional parameters, in declaration order.
// Keyword-only parameters, *args and **kwargs are not included.
func (f FunctionDef) Params() []Param {
	params := f.node.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var out []Param
	for _, child := range namedChildren(params) {
		switch child.Kind() {
		case "identifier":
			out = append(out, Param{Name: nodeText(child, f.src)})
		case "typed_parameter":
			inner := namedChildren(child)
			if len(inner) > 0 && inner[0].Kind() == "identifier" {
				out = append(out, Param{Name: nodeText(inner[0], f.src)})
			}
		case "default_parameter", "typed_default_parameter":
			name := child.ChildByFieldName("name")
			if name == nil || name.Kind() != "identifier" {
				continue
			}
			out = append(out, Param{
				Name:       nodeText(name, f.src),
				Default:    newExpr(child.ChildByFieldName("value"), f.src),
				HasDefault: true,
			})
		case "positional_separator":
			// The bare `/`; parameters on both sides are positional.
		case "list_splat_pattern", "keyword_separator", "dictionary_splat_pattern":
			// Everything from *args (or a bare `*`) on is keyword-only.
			return out
		}
	}
	return out
}

// Decorators returns the decorator expressions attached to the function,
// in declaration order (the expression after each `@`).
func (f FunctionDef) Decorators() []Expr {
	var out []Expr
	for _, dec := range f.decorators {
		inner := namedChildren(dec)
		if len(inner) != 1 {
			continue
		}
		out = append(out, newExpr(inner[0], f.src))
	}
	return out
}
