package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/odooscan/odooscan/internal/addons"
)

// repoCmd represents the repo command
var repoCmd = &cobra.Command{
	Use:   "repo DIR",
	Short: "Analyze every addon module in a repository",
	Long: `Repo discovers the addon modules of a repository (directories carrying
a __manifest__.py or __openerp__.py) and analyzes each of them.

Examples:
  # Analyze a whole addons repository
  odooscan repo ~/src/sale-workflow

  # Without progress output
  odooscan repo ~/src/sale-workflow --quiet
`,
	Args: cobra.ExactArgs(1),
	RunE: runRepo,
}

func init() {
	rootCmd.AddCommand(repoCmd)
}

func runRepo(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling analysis...")
		cancel()
	}()

	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	opts, err := analysisOptions(cfg)
	if err != nil {
		return err
	}

	reporter := newProgressReporter(quiet)
	opts.Progress = reporter.OnModule
	defer reporter.Finish()

	report, err := addons.AnalyzeRepository(ctx, args[0], opts)
	if err != nil {
		return err
	}
	reporter.Finish()

	return writeReport(report, cfg.Output.Indent)
}
