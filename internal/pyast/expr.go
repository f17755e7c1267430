package pyast

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ExprKind is the closed set of expression shapes the extractors
// distinguish. Anything else is Unsupported.
type ExprKind int

const (
	Unsupported ExprKind = iota
	Identifier
	Attribute
	Call
	Constant
	Dict
	List
	Tuple
	Lambda
)

// Expr is one expression fragment.
type Expr struct {
	kind ExprKind
	node *sitter.Node
	src  []byte
}

// Keyword is a keyword argument inside a call, e.g. maxsize=128.
type Keyword struct {
	Name  string
	Value Expr
}

// Pair is one key/value entry of a dictionary literal.
type Pair struct {
	Key   Expr
	Value Expr
}

func newExpr(node *sitter.Node, src []byte) Expr {
	if node == nil {
		return Expr{kind: Unsupported}
	}
	e := Expr{node: node, src: src}
	switch node.Kind() {
	case "identifier":
		e.kind = Identifier
	case "attribute":
		e.kind = Attribute
	case "call":
		e.kind = Call
	case "string":
		// f-strings carry interpolation children and are not constants.
		e.kind = Constant
		for _, child := range namedChildren(node) {
			if child.Kind() == "interpolation" {
				e.kind = Unsupported
				break
			}
		}
	case "concatenated_string":
		e.kind = Constant
		for _, part := range namedChildren(node) {
			if newExpr(part, src).kind != Constant {
				e.kind = Unsupported
				break
			}
		}
	case "integer", "float", "true", "false", "none":
		e.kind = Constant
	case "dictionary":
		e.kind = Dict
	case "list":
		e.kind = List
	case "tuple":
		e.kind = Tuple
	case "lambda":
		e.kind = Lambda
	case "parenthesized_expression":
		inner := namedChildren(node)
		if len(inner) == 1 {
			return newExpr(inner[0], src)
		}
		e.kind = Unsupported
	default:
		e.kind = Unsupported
	}
	return e
}

// Kind returns the expression's shape.
func (e Expr) Kind() ExprKind { return e.kind }

// Text returns the raw source text of the expression.
func (e Expr) Text() string { return nodeText(e.node, e.src) }

// Ident returns the identifier name. Valid for Identifier expressions.
func (e Expr) Ident() string {
	if e.kind != Identifier {
		return ""
	}
	return e.Text()
}

// AttrObject returns the object part of an attribute access
// (the `fields` in `fields.Char`).
func (e Expr) AttrObject() Expr {
	if e.kind != Attribute {
		return Expr{kind: Unsupported}
	}
	return newExpr(e.node.ChildByFieldName("object"), e.src)
}

// AttrName returns the accessed attribute name
// (the `Char` in `fields.Char`).
func (e Expr) AttrName() string {
	if e.kind != Attribute {
		return ""
	}
	return nodeText(e.node.ChildByFieldName("attribute"), e.src)
}

// CallTarget returns the called expression.
func (e Expr) CallTarget() Expr {
	if e.kind != Call {
		return Expr{kind: Unsupported}
	}
	return newExpr(e.node.ChildByFieldName("function"), e.src)
}

// CallArgs returns the positional arguments of a call.
func (e Expr) CallArgs() []Expr {
	var args []Expr
	for _, child := range e.callArgNodes() {
		if child.Kind() == "keyword_argument" {
			continue
		}
		args = append(args, newExpr(child, e.src))
	}
	return args
}

// CallKeywords returns the keyword arguments of a call, in order.
func (e Expr) CallKeywords() []Keyword {
	var kwargs []Keyword
	for _, child := range e.callArgNodes() {
		if child.Kind() != "keyword_argument" {
			continue
		}
		kwargs = append(kwargs, Keyword{
			Name:  nodeText(child.ChildByFieldName("name"), e.src),
			Value: newExpr(child.ChildByFieldName("value"), e.src),
		})
	}
	return kwargs
}

func (e Expr) callArgNodes() []*sitter.Node {
	if e.kind != Call {
		return nil
	}
	args := e.node.ChildByFieldName("arguments")
	if args == nil || args.Kind() != "argument_list" {
		return nil
	}
	return namedChildren(args)
}

// DictPairs returns the key/value entries of a dictionary literal.
// Splatted entries (**other) are not returned.
func (e Expr) DictPairs() []Pair {
	if e.kind != Dict {
		return nil
	}
	var pairs []Pair
	for _, child := range namedChildren(e.node) {
		if child.Kind() != "pair" {
			continue
		}
		pairs = append(pairs, Pair{
			Key:   newExpr(child.ChildByFieldName("key"), e.src),
			Value: newExpr(child.ChildByFieldName("value"), e.src),
		})
	}
	return pairs
}

// StringValue returns the decoded value of a string constant.
func (e Expr) StringValue() (string, bool) {
	if e.kind != Constant {
		return "", false
	}
	switch e.node.Kind() {
	case "string":
		return decodeString(e.node, e.src), true
	case "concatenated_string":
		var sb strings.Builder
		for _, part := range namedChildren(e.node) {
			sb.WriteString(decodeString(part, e.src))
		}
		return sb.String(), true
	}
	return "", false
}

// BoolValue returns the value of a True/False constant.
func (e Expr) BoolValue() (bool, bool) {
	if e.kind != Constant {
		return false, false
	}
	switch e.node.Kind() {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// IsNone reports whether the expression is the None constant.
func (e Expr) IsNone() bool {
	return e.kind == Constant && e.node.Kind() == "none"
}

// Elements returns the element expressions of a list or tuple literal.
func (e Expr) Elements() []Expr {
	if e.kind != List && e.kind != Tuple {
		return nil
	}
	var out []Expr
	for _, child := range namedChildren(e.node) {
		out = append(out, newExpr(child, e.src))
	}
	return out
}

// decodeString joins a string node's content, resolving the escape
// sequences Python and Go agree on. Unknown escapes keep their backslash,
// matching Python's behavior for unrecognized sequences.
func decodeString(node *sitter.Node, src []byte) string {
	var sb strings.Builder
	for _, child := range namedChildren(node) {
		if child.Kind() == "string_content" {
			sb.WriteString(decodeContent(child, src))
		}
	}
	return sb.String()
}

// decodeContent splices a string_content node, replacing its
// escape_sequence children with their decoded values.
func decodeContent(node *sitter.Node, src []byte) string {
	var sb strings.Builder
	pos := node.StartByte()
	for _, esc := range namedChildren(node) {
		if esc.Kind() != "escape_sequence" {
			continue
		}
		sb.Write(src[pos:esc.StartByte()])
		sb.WriteString(decodeEscape(nodeText(esc, src)))
		pos = esc.EndByte()
	}
	sb.Write(src[pos:node.EndByte()])
	return sb.String()
}

func decodeEscape(esc string) string {
	if len(esc) < 2 || esc[0] != '\\' {
		return esc
	}
	switch esc[1] {
	case '\\':
		return `\`
	case '\'':
		return "'"
	case '"':
		return `"`
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		return "\x00"
	case '\n':
		// Line continuation inside a string literal.
		return ""
	}
	return esc
}
