package model

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/pyast"
)

// Method is one extracted method of a data model.
type Method struct {
	Name       string   `json:"name"`
	Signature  []string `json:"signature"`
	Decorators []string `json:"decorators,omitempty"`
}

// extractMethods scans the class body for function definitions, skipping
// private __ methods. Order of declaration is preserved. Returns nil when
// no method is declared.
func extractMethods(cls pyast.ClassDef) *orderedmap.OrderedMap[string, Method] {
	methods := orderedmap.New[string, Method]()
	for _, stmt := range cls.Body() {
		if stmt.Kind() != pyast.StmtFunc {
			continue
		}
		fn := stmt.Func()
		name := fn.Name()
		if strings.HasPrefix(name, "__") {
			continue
		}
		methods.Set(name, Method{
			Name:       name,
			Signature:  signature(fn),
			Decorators: decorators(fn),
		})
	}
	if methods.Len() == 0 {
		return nil
	}
	return methods
}

// signature renders the positional parameters in declaration order,
// attaching rendered defaults as "name=default".
func signature(fn pyast.FunctionDef) []string {
	sig := []string{}
	for _, param := range fn.Params() {
		if param.HasDefault {
			sig = append(sig, param.Name+"="+Render(param.Default))
		} else {
			sig = append(sig, param.Name)
		}
	}
	return sig
}

// decorators renders the method's decorators in declaration order.
// Shapes other than identifier, attribute access, or call (and calls or
// attribute accesses whose base is not a bare identifier) are skipped.
func decorators(fn pyast.FunctionDef) []string {
	var out []string
	for _, dec := range fn.Decorators() {
		if rendered, ok := renderDecorator(dec); ok {
			out = append(out, rendered)
		}
	}
	return out
}

func renderDecorator(dec pyast.Expr) (string, bool) {
	switch dec.Kind() {
	case pyast.Identifier:
		// @model
		return dec.Ident(), true
	case pyast.Attribute:
		// @api.model
		return dottedName(dec)
	case pyast.Call:
		// @api.depends("line_ids.amount")
		name, ok := targetName(dec.CallTarget())
		if !ok {
			return "", false
		}
		args := []string{}
		for _, arg := range dec.CallArgs() {
			args = append(args, Render(arg))
		}
		for _, kw := range dec.CallKeywords() {
			args = append(args, kw.Name+"="+Render(kw.Value))
		}
		return name + "(" + strings.Join(args, ", ") + ")", true
	}
	return "", false
}

func targetName(target pyast.Expr) (string, bool) {
	switch target.Kind() {
	case pyast.Identifier:
		return target.Ident(), true
	case pyast.Attribute:
		return dottedName(target)
	}
	return "", false
}

// dottedName renders obj.attr when the object is a bare identifier.
func dottedName(e pyast.Expr) (string, bool) {
	obj := e.AttrObject()
	if obj.Kind() != pyast.Identifier {
		return "", false
	}
	return obj.Ident() + "." + e.AttrName(), true
}
