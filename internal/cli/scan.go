package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/odooscan/odooscan/internal/scanner"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan FILE",
	Short: "Extract the data models declared in one Python file",
	Long: `Scan parses a single Python source file and prints the data models and
model base classes it declares as JSON.

Examples:
  # Scan one model file
  odooscan scan addons/sale/models/sale_order.py

  # Write the result to a file
  odooscan scan models/partner.py -o partner.json
`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	result, err := scanner.ScanFile(context.Background(), args[0])
	if err != nil {
		return err
	}

	return writeReport(result, cfg.Output.Indent)
}
