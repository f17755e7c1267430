package addons

import (
	"os"
	"path/filepath"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/pyast"
)

// manifestNames are the recognized addon manifest file names, oldest
// first (__openerp__.py predates the rename to __manifest__.py).
var manifestNames = []string{"__openerp__.py", "__manifest__.py"}

// readManifest extracts the manifest dictionary of an addon module.
// The manifest must be a single top-level dict of literals; anything
// else (unreadable file, syntax error, non-literal entry) degrades to an
// empty mapping rather than failing the analysis.
func readManifest(moduleDir string) *orderedmap.OrderedMap[string, any] {
	empty := orderedmap.New[string, any]()
	for _, name := range manifestNames {
		path := filepath.Join(moduleDir, name)
		source, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		mod, err := pyast.Parse(source)
		if err != nil {
			return empty
		}
		defer mod.Close()

		exprs := mod.TopLevelExprs()
		if mod.HasError() || len(exprs) == 0 {
			return empty
		}
		manifest, ok := literalDict(exprs[0])
		if !ok {
			return empty
		}
		return manifest
	}
	return empty
}

func literalDict(e pyast.Expr) (*orderedmap.OrderedMap[string, any], bool) {
	if e.Kind() != pyast.Dict {
		return nil, false
	}
	dict := orderedmap.New[string, any]()
	for _, pair := range e.DictPairs() {
		key, ok := pair.Key.StringValue()
		if !ok {
			return nil, false
		}
		value, ok := literalValue(pair.Value)
		if !ok {
			return nil, false
		}
		dict.Set(key, value)
	}
	return dict, true
}

// literalValue evaluates an expression made only of literals: constants,
// and lists/tuples/dicts thereof. Any non-literal anywhere fails the
// whole value, mirroring Python's ast.literal_eval.
func literalValue(e pyast.Expr) (any, bool) {
	switch e.Kind() {
	case pyast.Constant:
		return constantValue(e)
	case pyast.List, pyast.Tuple:
		items := []any{}
		for _, elem := range e.Elements() {
			value, ok := literalValue(elem)
			if !ok {
				return nil, false
			}
			items = append(items, value)
		}
		return items, true
	case pyast.Dict:
		return literalDict(e)
	}
	return nil, false
}

func constantValue(e pyast.Expr) (any, bool) {
	if s, ok := e.StringValue(); ok {
		return s, true
	}
	if b, ok := e.BoolValue(); ok {
		return b, true
	}
	if e.IsNone() {
		return nil, true
	}
	text := e.Text()
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, true
	}
	return nil, false
}
