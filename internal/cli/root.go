package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/odooscan/odooscan/internal/config"
)

var (
	cfgFile    string
	quiet      bool
	outputPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "odooscan",
	Short: "Odooscan - static analyzer for Odoo addons",
	Long: `Odooscan statically extracts structured metadata from Odoo addons:
data models declared in Python files (identity attributes, fields,
method signatures), addon manifests, and per-language code line counts.
No Python code is executed.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <target>/.odooscan/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable progress output")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the JSON report to a file instead of stdout")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// loadConfig loads the configuration for the analyzed target directory,
// honoring an explicit --config file when given.
func loadConfig(targetDir string) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.LoadFromDir(targetDir)
}
