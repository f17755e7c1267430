// Package model classifies class definitions as Odoo data models and
// extracts their structured metadata (identity attributes, field
// declarations, method signatures) from syntax alone, without running
// any Python.
package model

import (
	"github.com/odooscan/odooscan/internal/pyast"
)

// BaseClasses are the framework's model ancestors. A class is recognized
// as a base class by its name plus inheritance shape alone.
var BaseClasses = []string{
	"BaseModel",
	"AbstractModel",
	"Model",
	"TransientModel",
}

// FieldTypes are the recognized field constructor names. Assignments
// calling anything outside this set never produce a field.
var FieldTypes = []string{
	"Boolean",
	"Char",
	"Integer",
	"Float",
	"Date",
	"Datetime",
	"Selection",
	"Many2one",
	"One2many",
	"Many2many",
}

var (
	baseClassSet = toSet(BaseClasses)
	fieldTypeSet = toSet(FieldTypes)
)

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Classification is the outcome of classifying one class definition.
type Classification int

const (
	// NoModel means the class is ignored.
	NoModel Classification = iota
	// DataModel is a concrete data model (it declares _name or _inherit).
	DataModel
	// BaseClass is a framework model ancestor.
	BaseClass
)

// Classify decides whether a class definition is a data model, a model
// base class, or neither. A class that qualifies as both (a base class
// redeclared with a _name) counts as a data model.
func Classify(cls pyast.ClassDef) Classification {
	if isDataModel(cls) {
		return DataModel
	}
	if isBaseClass(cls) {
		return BaseClass
	}
	return NoModel
}

// isDataModel reports whether the class body assigns a non-empty string
// to _name or _inherit. _inherits alone does not qualify.
func isDataModel(cls pyast.ClassDef) bool {
	return attrString(cls, "_name") != "" || attrString(cls, "_inherit") != ""
}

// isBaseClass recognizes the framework ancestors: a bare `class BaseModel`
// with no bases, or a class from the base-class set extending another
// member of that same set.
func isBaseClass(cls pyast.ClassDef) bool {
	bases := baseNames(cls)
	if cls.Name() == "BaseModel" && len(bases) == 0 {
		return true
	}
	if _, ok := baseClassSet[cls.Name()]; !ok {
		return false
	}
	for _, base := range bases {
		if _, ok := baseClassSet[base]; ok {
			return true
		}
	}
	return false
}

// baseNames returns the simple name of each declared base: a bare
// identifier, or the final component of a dotted reference
// (models.Model contributes Model). Other base shapes are skipped.
func baseNames(cls pyast.ClassDef) []string {
	var names []string
	for _, base := range cls.Bases() {
		switch base.Kind() {
		case pyast.Identifier:
			names = append(names, base.Ident())
		case pyast.Attribute:
			names = append(names, base.AttrName())
		}
	}
	return names
}
