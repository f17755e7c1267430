package addons

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for repository analysis:
// - Modules are discovered by manifest file, legacy name included
// - Directories without a manifest are not modules
// - The report preserves discovery order and keys by module name
// - Ignore patterns exclude whole modules
// - The progress callback fires once per analyzed module
// - Cancellation stops the analysis

func TestDiscoverModules(t *testing.T) {
	t.Parallel()

	modules, err := DiscoverModules(fixtureAddons)
	require.NoError(t, err)

	var names []string
	for _, dir := range modules {
		names = append(names, filepath.Base(dir))
	}
	assert.Equal(t, []string{"legacy_partner", "sale_extra"}, names)
}

func TestDiscoverModules_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := DiscoverModules(filepath.Join(fixtureAddons, "no_such_dir"))
	require.Error(t, err)
}

func TestAnalyzeRepository(t *testing.T) {
	t.Parallel()

	report, err := AnalyzeRepository(context.Background(), fixtureAddons, Options{IncludeModels: true})
	require.NoError(t, err)

	require.Equal(t, 2, report.Len())

	var order []string
	for pair := report.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	assert.Equal(t, []string{"legacy_partner", "sale_extra"}, order)

	legacy, ok := report.Get("legacy_partner")
	require.True(t, ok)
	python, ok := legacy.Code.Get("Python")
	require.True(t, ok)
	assert.Equal(t, 10, python)

	key := filepath.Join(fixtureAddons, "legacy_partner", "partner.py") + ":ResPartner"
	rec, ok := legacy.Models.Get(key)
	require.True(t, ok)
	assert.Equal(t, "res.partner", rec.Inherit)
	require.NotNil(t, rec.Auto)
	assert.True(t, *rec.Auto)
}

func TestAnalyzeRepository_IgnoreModule(t *testing.T) {
	t.Parallel()

	ignore, err := CompileIgnore([]string{"legacy_*"})
	require.NoError(t, err)

	report, err := AnalyzeRepository(context.Background(), fixtureAddons, Options{Ignore: ignore})
	require.NoError(t, err)

	require.Equal(t, 1, report.Len())
	_, ok := report.Get("sale_extra")
	assert.True(t, ok)
}

func TestAnalyzeRepository_Progress(t *testing.T) {
	t.Parallel()

	var seen []string
	_, err := AnalyzeRepository(context.Background(), fixtureAddons, Options{
		Progress: func(module string, index, total int) {
			assert.Equal(t, 2, total)
			seen = append(seen, module)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy_partner", "sale_extra"}, seen)
}

func TestAnalyzeRepository_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeRepository(ctx, fixtureAddons, Options{})
	require.ErrorIs(t, err, context.Canceled)
}
