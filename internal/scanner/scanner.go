// Package scanner turns one Python source file into its per-file model
// mapping: every top-level class recognized as a data model or model base
// class, keyed by the aggregation rules below.
package scanner

import (
	"context"
	"fmt"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/model"
	"github.com/odooscan/odooscan/internal/pyast"
)

// FileResult is the extraction result for one source file.
type FileResult struct {
	Models *orderedmap.OrderedMap[string, *model.Record] `json:"models"`
}

// ScanFile reads and parses one Python file and extracts its models.
//
// Data models are keyed "path:ClassName" so re-declarations of the same
// model across files never collide. Base classes are keyed by bare class
// name, so a later declaration overwrites an earlier one.
//
// Returns *InvalidInputError when the path does not end in .py (checked
// before the file is opened) and *ParseError when the content is not
// valid Python.
func ScanFile(ctx context.Context, path string) (*FileResult, error) {
	if !strings.HasSuffix(path, ".py") {
		return nil, &InvalidInputError{Path: path}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	mod, err := pyast.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer mod.Close()

	if mod.HasError() {
		return nil, &ParseError{Path: path}
	}

	return scanModule(path, mod), nil
}

func scanModule(path string, mod *pyast.Module) *FileResult {
	models := orderedmap.New[string, *model.Record]()
	for _, cls := range mod.Classes() {
		switch model.Classify(cls) {
		case model.DataModel:
			key := fmt.Sprintf("%s:%s", path, cls.Name())
			models.Set(key, model.Extract(cls))
		case model.BaseClass:
			models.Set(cls.Name(), model.Extract(cls))
		}
	}
	return &FileResult{Models: models}
}
