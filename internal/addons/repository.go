package addons

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RepositoryReport maps module names to their analysis, in discovery
// order.
type RepositoryReport = orderedmap.OrderedMap[string, *ModuleReport]

// DiscoverModules returns the addon module directories directly under
// root: directories carrying a __manifest__.py or __openerp__.py.
func DiscoverModules(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository %s: %w", root, err)
	}
	var modules []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		for _, name := range manifestNames {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				modules = append(modules, dir)
				break
			}
		}
	}
	return modules, nil
}

// AnalyzeRepository discovers and analyzes every addon module under
// root. Ignore patterns filter module directories by name as well as
// files within each module.
func AnalyzeRepository(ctx context.Context, root string, opts Options) (*RepositoryReport, error) {
	modules, err := DiscoverModules(root)
	if err != nil {
		return nil, err
	}

	report := orderedmap.New[string, *ModuleReport]()
	for i, dir := range modules {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		name := filepath.Base(dir)
		if opts.ignored(name) {
			continue
		}
		if opts.Progress != nil {
			opts.Progress(name, i, len(modules))
		}
		moduleReport, err := AnalyzeModule(ctx, dir, opts)
		if err != nil {
			return nil, err
		}
		report.Set(name, moduleReport)
	}
	return report, nil
}
