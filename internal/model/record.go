package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/pyast"
)

// Record is the extracted description of one classified class.
//
// Kind is always serialized, even when the class has no bases (null).
// Auto is serialized whenever it was explicitly declared, including
// _auto = False. Every other attribute is serialized only when non-empty.
type Record struct {
	Kind     *string                                `json:"kind"`
	Auto     *bool                                  `json:"auto,omitempty"`
	Name     string                                 `json:"name,omitempty"`
	Inherit  string                                 `json:"inherit,omitempty"`
	Inherits *orderedmap.OrderedMap[string, string] `json:"inherits,omitempty"`
	Order    string                                 `json:"order,omitempty"`
	Fields   *orderedmap.OrderedMap[string, Field]  `json:"fields,omitempty"`
	Methods  *orderedmap.OrderedMap[string, Method] `json:"methods,omitempty"`
}

// Extract builds the Record for a class already classified as a data
// model or base class.
func Extract(cls pyast.ClassDef) *Record {
	return &Record{
		Kind:     kindOf(cls),
		Auto:     attrBool(cls, "_auto"),
		Name:     attrString(cls, "_name"),
		Inherit:  attrString(cls, "_inherit"),
		Inherits: attrInherits(cls),
		Order:    attrString(cls, "_order"),
		Fields:   extractFields(cls),
		Methods:  extractMethods(cls),
	}
}

// kindOf returns the model category: the simple name of the first usable
// base reference (Model, AbstractModel, TransientModel...). A class with
// no bases, like BaseModel itself, has no kind.
func kindOf(cls pyast.ClassDef) *string {
	for _, base := range cls.Bases() {
		switch base.Kind() {
		case pyast.Identifier:
			name := base.Ident()
			return &name
		case pyast.Attribute:
			name := base.AttrName()
			return &name
		}
	}
	return nil
}

// attrString scans body-level assignments for `attr = "literal"` and
// returns the first string value found. Any other right-hand-side shape
// (call, name reference, f-string...) is skipped rather than failing.
func attrString(cls pyast.ClassDef, attr string) string {
	for _, value := range attrValues(cls, attr) {
		if s, ok := value.StringValue(); ok {
			return s
		}
	}
	return ""
}

// attrBool resolves `attr = True/False` assignments. The nil result
// distinguishes "never declared" from an explicit False.
func attrBool(cls pyast.ClassDef, attr string) *bool {
	for _, value := range attrValues(cls, attr) {
		if b, ok := value.BoolValue(); ok {
			return &b
		}
	}
	return nil
}

// attrInherits resolves the _inherits mapping. Only entries whose key and
// value are both literals are kept; if nothing survives the filtering the
// attribute is absent, not an empty mapping.
func attrInherits(cls pyast.ClassDef) *orderedmap.OrderedMap[string, string] {
	for _, value := range attrValues(cls, "_inherits") {
		if value.Kind() != pyast.Dict {
			continue
		}
		inherits := orderedmap.New[string, string]()
		for _, pair := range value.DictPairs() {
			if pair.Key.Kind() != pyast.Constant || pair.Value.Kind() != pyast.Constant {
				continue
			}
			inherits.Set(constString(pair.Key), constString(pair.Value))
		}
		if inherits.Len() > 0 {
			return inherits
		}
	}
	return nil
}

// attrValues returns every value assigned to attr in the class body.
func attrValues(cls pyast.ClassDef, attr string) []pyast.Expr {
	var values []pyast.Expr
	for _, stmt := range cls.Body() {
		if stmt.Kind() != pyast.StmtAssign {
			continue
		}
		assign := stmt.Assign()
		target, ok := assign.TargetIdent()
		if !ok || target != attr {
			continue
		}
		values = append(values, assign.Value())
	}
	return values
}

// constString is the value of a constant used as a mapping key or value:
// the decoded text for strings, the literal text for anything else.
func constString(e pyast.Expr) string {
	if s, ok := e.StringValue(); ok {
		return s
	}
	return e.Text()
}
