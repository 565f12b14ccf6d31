package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vsrin/shelfstat"
	"github.com/vsrin/shelfstat/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	opening string
	asof    string
	outDir  string
	quiet   bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run the FIFO analysis and write the report files" }
func (*analyzeCmd) Usage() string {
	return `ssa analyze [-opening <csv>] [-asof <time>] [-out <dir>] [-q] <transactions.csv>

  Loads the transaction file, replays each (SKU, location) group through
  the FIFO matcher, writes the report CSVs and prints a console summary.

Usage Examples:
# Analyze and write reports to the working directory.
$ ssa analyze inventory_data.csv

# Seed the queues with opening stock and write reports elsewhere.
$ ssa analyze -opening opening.csv -out reports/ inventory_data.csv

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opening, "opening", "", "Opening stock CSV, loaded as inbound rows before the transactions.")
	f.StringVar(&c.asof, "asof", "", "Reference time for aging (defaults to now).")
	f.StringVar(&c.outDir, "out", "", "Output directory for the report files (defaults to the config, then \".\").")
	f.BoolVar(&c.quiet, "q", false, "Skip the console summary.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction file argument")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, analysis, err := runAnalysis(f.Arg(0), c.opening, c.asof, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	outDir := c.outDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	written, err := shelfstat.WriteReports(outDir, ledger, analysis, cfg.bucketSpecs())
	for _, path := range written {
		logger.Info().Str("file", path).Msg("report written")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing reports: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.quiet {
		printMarkdown(renderer.SummaryMarkdown(analysis, cfg.bucketSpecs(), cfg.Currency))
	}
	return subcommands.ExitSuccess
}
