// Package pyast gives a small, typed view over the tree-sitter Python
// grammar. It exposes the handful of syntactic shapes the model extractors
// care about (classes, assignments, function definitions, and a closed
// expression variant) instead of raw tree-sitter nodes.
package pyast

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

var pyLanguage = sitter.NewLanguage(python.Language())

// Module is one parsed Python source file. It owns the tree-sitter tree;
// call Close when the extracted data has been copied out.
type Module struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses Python source text into a Module.
func Parse(src []byte) (*Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(pyLanguage)

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("tree-sitter returned no tree")
	}

	return &Module{tree: tree, src: src}, nil
}

// Close releases the underlying tree-sitter tree.
func (m *Module) Close() {
	if m.tree != nil {
		m.tree.Close()
		m.tree = nil
	}
}

// HasError reports whether the parsed tree contains syntax errors
// (tree-sitter never fails outright on malformed input, it inserts
// ERROR/MISSING nodes instead).
func (m *Module) HasError() bool {
	return m.tree.RootNode().HasError()
}

// Classes returns the module's top-level class definitions, in source
// order. Nested classes are not visited. A decorated class is unwrapped
// to its class_definition.
func (m *Module) Classes() []ClassDef {
	var classes []ClassDef
	for _, child := range namedChildren(m.tree.RootNode()) {
		node := child
		if node.Kind() == "decorated_definition" {
			def := node.ChildByFieldName("definition")
			if def == nil {
				continue
			}
			node = def
		}
		if node.Kind() == "class_definition" {
			classes = append(classes, ClassDef{node: node, src: m.src})
		}
	}
	return classes
}

// TopLevelExprs returns the module's top-level expression statements
// (a manifest file is one top-level dict literal).
func (m *Module) TopLevelExprs() []Expr {
	var exprs []Expr
	for _, child := range namedChildren(m.tree.RootNode()) {
		if child.Kind() != "expression_statement" {
			continue
		}
		inner := namedChildren(child)
		if len(inner) == 1 {
			exprs = append(exprs, newExpr(inner[0], m.src))
		}
	}
	return exprs
}

// nodeText returns the source text a node spans.
func nodeText(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return string(src[node.StartByte():node.EndByte()])
}

// namedChildren returns a node's named children, skipping comments, which
// the Python grammar injects as extra named nodes anywhere.
func namedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}
