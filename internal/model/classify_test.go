package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odooscan/odooscan/internal/pyast"
)

// Test Plan for the classifier:
// - _name or _inherit string literals qualify a class as a data model
// - _inherits alone does not qualify
// - Non-literal _name values do not qualify
// - BaseModel with no bases is always a base class
// - Base-class set members extending other members are base classes
// - Dotted base references contribute their final component
// - Everything else classifies as NoModel

// parseClass parses source and returns its single top-level class.
func parseClass(t *testing.T, source string) pyast.ClassDef {
	t.Helper()
	mod, err := pyast.Parse([]byte(source))
	require.NoError(t, err)
	t.Cleanup(mod.Close)

	classes := mod.Classes()
	require.Len(t, classes, 1)
	return classes[0]
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   Classification
	}{
		{
			name: "name attribute",
			source: `class Partner(models.Model):
    _name = "res.partner"
`,
			want: DataModel,
		},
		{
			name: "inherit attribute",
			source: `class Partner(models.Model):
    _inherit = "res.partner"
`,
			want: DataModel,
		},
		{
			name: "inherits alone does not qualify",
			source: `class Partner(models.Model):
    _inherits = {"res.partner": "partner_id"}
`,
			want: NoModel,
		},
		{
			name: "empty name does not qualify",
			source: `class Partner(models.Model):
    _name = ""
`,
			want: NoModel,
		},
		{
			name: "non-literal name does not qualify",
			source: `class Partner(models.Model):
    _name = compute_name()
`,
			want: NoModel,
		},
		{
			name: "f-string name does not qualify",
			source: `class Partner(models.Model):
    _name = f"res.{suffix}"
`,
			want: NoModel,
		},
		{
			name:   "bare BaseModel",
			source: "class BaseModel:\n    x = 1\n",
			want:   BaseClass,
		},
		{
			name:   "BaseModel with bases is not the root",
			source: "class BaseModel(Mixin):\n    pass\n",
			want:   NoModel,
		},
		{
			name:   "Model extending BaseModel",
			source: "class Model(BaseModel):\n    pass\n",
			want:   BaseClass,
		},
		{
			name:   "dotted base reference",
			source: "class TransientModel(models.Model):\n    pass\n",
			want:   BaseClass,
		},
		{
			name:   "base-class name without matching base",
			source: "class Model(Unrelated):\n    pass\n",
			want:   NoModel,
		},
		{
			name:   "matching base but foreign name",
			source: "class Helper(Model):\n    pass\n",
			want:   NoModel,
		},
		{
			name:   "plain class",
			source: "class Helper:\n    pass\n",
			want:   NoModel,
		},
		{
			name: "model name wins over base-class shape",
			source: `class Model(BaseModel):
    _name = "res.thing"
`,
			want: DataModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := parseClass(t, tt.source)
			require.Equal(t, tt.want, Classify(cls))
		})
	}
}
