// Package addons analyzes Odoo addon modules and repositories: manifest
// metadata, per-language code line counts, and the data models declared
// in each Python file.
package addons

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/odooscan/odooscan/internal/model"
	"github.com/odooscan/odooscan/internal/scanner"
)

// Options configures module and repository analysis.
type Options struct {
	// Languages to count code lines for. Defaults to DefaultLanguages.
	Languages []string
	// IncludeModels merges per-file model extraction into module reports.
	IncludeModels bool
	// Ignore filters out files and module directories whose
	// slash-separated path relative to the analyzed root matches.
	Ignore []glob.Glob
	// Progress, when set, is called before each module of a repository
	// analysis is processed.
	Progress func(module string, index, total int)
}

// CompileIgnore compiles ignore patterns ("**/*.pot", "setup/**").
func CompileIgnore(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func (o Options) languages() []string {
	if len(o.Languages) == 0 {
		return DefaultLanguages
	}
	return o.Languages
}

func (o Options) ignored(relPath string) bool {
	for _, g := range o.Ignore {
		if g.Match(relPath) {
			return true
		}
	}
	return false
}

// ModuleReport is the analysis of one addon module.
type ModuleReport struct {
	Code     *orderedmap.OrderedMap[string, int]           `json:"code"`
	Manifest *orderedmap.OrderedMap[string, any]           `json:"manifest"`
	Models   *orderedmap.OrderedMap[string, *model.Record] `json:"models,omitempty"`
	Errors   []string                                      `json:"errors,omitempty"`
}

// AnalyzeModule analyzes one addon module directory.
//
// Files that cannot be read or parsed do not abort the module: they are
// skipped and reported in the Errors list.
func AnalyzeModule(ctx context.Context, dir string, opts Options) (*ModuleReport, error) {
	report := &ModuleReport{
		Code:     orderedmap.New[string, int](),
		Manifest: readManifest(dir),
	}
	for _, lang := range opts.languages() {
		report.Code.Set(lang, 0)
	}
	if opts.IncludeModels {
		report.Models = orderedmap.New[string, *model.Record]()
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if opts.ignored(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		lang, counted := languageByExt[filepath.Ext(path)]
		if counted {
			if current, ok := report.Code.Get(lang); ok {
				source, readErr := os.ReadFile(path)
				if readErr != nil {
					report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", path, readErr))
					return nil
				}
				report.Code.Set(lang, current+countCodeLines(string(source), lang))
			}
		}

		if opts.IncludeModels && filepath.Ext(path) == ".py" {
			result, scanErr := scanner.ScanFile(ctx, path)
			if scanErr != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", path, scanErr))
				return nil
			}
			for pair := result.Models.Oldest(); pair != nil; pair = pair.Next() {
				report.Models.Set(pair.Key, pair.Value)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze module %s: %w", dir, err)
	}

	if opts.IncludeModels && report.Models.Len() == 0 {
		report.Models = nil
	}
	return report, nil
}
