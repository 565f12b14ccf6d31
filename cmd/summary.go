package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vsrin/shelfstat/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	opening string
	asof    string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the analysis summary without writing files" }
func (*summaryCmd) Usage() string {
	return `ssa summary [-opening <csv>] [-asof <time>] <transactions.csv>

  Runs the FIFO analysis and prints the summary report: transaction
  overview, aging categories, shelf-time statistics and shortfalls.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opening, "opening", "", "Opening stock CSV, loaded as inbound rows before the transactions.")
	f.StringVar(&c.asof, "asof", "", "Reference time for aging (defaults to now).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction file argument")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	_, analysis, err := runAnalysis(f.Arg(0), c.opening, c.asof, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(analysis, cfg.bucketSpecs(), cfg.Currency))
	return subcommands.ExitSuccess
}
