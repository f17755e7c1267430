package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the scanner:
// - Data models are keyed "path:ClassName", base classes by bare name
// - Non-.py paths fail with InvalidInputError before any file access
// - Invalid Python fails with ParseError
// - Nested classes are not visited
// - A file without models yields an empty mapping, not an error
// - Duplicate keys keep the last declaration (last write wins)
// - Re-running extraction yields byte-identical JSON (idempotence)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanFile_DataModel(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "partner.py", `class Partner(models.Model):
    _name = "res.partner"
    name = fields.Char()
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Equal(t, 1, result.Models.Len())
	rec, ok := result.Models.Get(path + ":Partner")
	require.True(t, ok, "data models are keyed path:ClassName")

	require.NotNil(t, rec.Kind)
	assert.Equal(t, "Model", *rec.Kind)
	assert.Equal(t, "res.partner", rec.Name)

	field, ok := rec.Fields.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Char", field.Type)
}

func TestScanFile_BaseClassKey(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "base.py", `class AbstractModel(Model):
    pass
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)

	// Base classes are keyed by bare class name, no path prefix.
	rec, ok := result.Models.Get("AbstractModel")
	require.True(t, ok)
	require.NotNil(t, rec.Kind)
	assert.Equal(t, "Model", *rec.Kind)
	assert.Nil(t, rec.Fields)
	assert.Nil(t, rec.Methods)
}

func TestScanFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	// The path is never opened: a nonexistent .txt file must fail with
	// InvalidInputError, not a file-system error.
	result, err := ScanFile(context.Background(), "notes.txt")
	require.Error(t, err)
	assert.Nil(t, result)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "notes.txt", invalid.Path)
}

func TestScanFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ScanFile(context.Background(), "no/such/file.py")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanFile_ParseError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.py", "class (:\n  def\n")

	result, err := ScanFile(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, result)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestScanFile_NoModels(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "helpers.py", `import os

class Helper:
    def run(self):
        pass

def main():
    pass
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Models.Len())
}

func TestScanFile_NestedClassesNotVisited(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "nested.py", `class Outer:
    class Partner(models.Model):
        _name = "res.partner"
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Models.Len())
}

func TestScanFile_DuplicateKeysLastWriteWins(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dup.py", `class Partner(models.Model):
    _name = "res.partner"
    name = fields.Char()

class Partner(models.Model):
    _name = "res.partner.duplicate"
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)

	require.Equal(t, 1, result.Models.Len())
	rec, ok := result.Models.Get(path + ":Partner")
	require.True(t, ok)
	assert.Equal(t, "res.partner.duplicate", rec.Name)
	assert.Nil(t, rec.Fields)
}

func TestScanFile_MixedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "mixed.py", `class BaseModel:
    pass

class SaleOrder(models.Model):
    _name = "sale.order"
    _inherits = {"res.partner": "partner_id"}
    amount = fields.Float()

    @api.depends("line_ids.amount")
    def _compute_amount(self, extra=None):
        pass

class Ignored:
    pass
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, result.Models.Len())

	_, ok := result.Models.Get("BaseModel")
	assert.True(t, ok)

	order, ok := result.Models.Get(path + ":SaleOrder")
	require.True(t, ok)
	assert.Equal(t, "sale.order", order.Name)

	link, ok := order.Inherits.Get("res.partner")
	require.True(t, ok)
	assert.Equal(t, "partner_id", link)

	method, ok := order.Methods.Get("_compute_amount")
	require.True(t, ok)
	assert.Equal(t, []string{"self", "extra=None"}, method.Signature)
	assert.Equal(t, []string{"api.depends('line_ids.amount')"}, method.Decorators)
}

func TestScanFile_JSONShape(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "partner.py", `class Partner(models.Model):
    _name = "res.partner"
    name = fields.Char()
`)

	result, err := ScanFile(context.Background(), path)
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	expected := fmt.Sprintf(`{
		"models": {
			"%s:Partner": {
				"kind": "Model",
				"name": "res.partner",
				"fields": {"name": {"name": "name", "type": "Char"}}
			}
		}
	}`, path)
	assert.JSONEq(t, expected, string(data))
}

func TestScanFile_Idempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "partner.py", `class Partner(models.Model):
    _name = "res.partner"
    name = fields.Char()
    company_id = fields.Many2one("res.company")

    def action_confirm(self, force=False):
        pass
`)

	first, err := ScanFile(context.Background(), path)
	require.NoError(t, err)
	second, err := ScanFile(context.Background(), path)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}
