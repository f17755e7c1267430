package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/pyast"
)

// Field is one declared field of a data model.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// extractFields scans the class body for field declarations: assignments
// whose right-hand side calls one of the recognized field constructors
// (fields.Char(...) or the rarer bare Char(...)). Order of declaration is
// preserved. Returns nil when no field is declared.
func extractFields(cls pyast.ClassDef) *orderedmap.OrderedMap[string, Field] {
	fields := orderedmap.New[string, Field]()
	for _, stmt := range cls.Body() {
		if stmt.Kind() != pyast.StmtAssign {
			continue
		}
		assign := stmt.Assign()
		name, ok := assign.TargetIdent()
		if !ok {
			continue
		}
		value := assign.Value()
		if value.Kind() != pyast.Call {
			continue
		}
		tag, ok := fieldType(value.CallTarget())
		if !ok {
			continue
		}
		fields.Set(name, Field{Name: name, Type: tag})
	}
	if fields.Len() == 0 {
		return nil
	}
	return fields
}

// fieldType resolves the call target to a field-type tag, accepting it
// only when it belongs to the enumerated set.
func fieldType(target pyast.Expr) (string, bool) {
	var tag string
	switch target.Kind() {
	case pyast.Attribute:
		tag = target.AttrName()
	case pyast.Identifier:
		tag = target.Ident()
	default:
		return "", false
	}
	if _, ok := fieldTypeSet[tag]; !ok {
		return "", false
	}
	return tag, true
}
