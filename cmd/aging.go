package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vsrin/shelfstat/renderer"
)

// agingCmd holds the flags for the 'aging' subcommand.
type agingCmd struct {
	opening string
	asof    string
}

func (*agingCmd) Name() string     { return "aging" }
func (*agingCmd) Synopsis() string { return "display current stock aging" }
func (*agingCmd) Usage() string {
	return `ssa aging [-opening <csv>] [-asof <time>] <transactions.csv>

  Displays current stock: per-group summary, age categories, and the
  open cost layers behind them.
`
}

func (c *agingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opening, "opening", "", "Opening stock CSV, loaded as inbound rows before the transactions.")
	f.StringVar(&c.asof, "asof", "", "Reference time for aging (defaults to now).")
}

func (c *agingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.AgingMarkdown(analysis, cfg.bucketSpecs(), cfg.Currency))
	return subcommands.ExitSuccess
}
