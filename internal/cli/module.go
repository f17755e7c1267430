package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/odooscan/odooscan/internal/addons"
)

// moduleCmd represents the module command
var moduleCmd = &cobra.Command{
	Use:   "module DIR",
	Short: "Analyze one addon module directory",
	Long: `Module analyzes a single addon: its manifest, per-language code line
counts, and (unless disabled in the configuration) the data models
declared in its Python files.

Examples:
  # Analyze an addon
  odooscan module addons/sale

  # Without model extraction
  ODOOSCAN_SCAN_MODELS=false odooscan module addons/sale
`,
	Args: cobra.ExactArgs(1),
	RunE: runModule,
}

func init() {
	rootCmd.AddCommand(moduleCmd)
}

func runModule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	opts, err := analysisOptions(cfg)
	if err != nil {
		return err
	}

	report, err := addons.AnalyzeModule(context.Background(), args[0], opts)
	if err != nil {
		return err
	}

	return writeReport(report, cfg.Output.Indent)
}
