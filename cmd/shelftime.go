package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vsrin/shelfstat/renderer"
)

// shelfTimeCmd holds the flags for the 'shelftime' subcommand.
type shelfTimeCmd struct {
	opening string
	asof    string
}

func (*shelfTimeCmd) Name() string     { return "shelftime" }
func (*shelfTimeCmd) Synopsis() string { return "display historical shelf-time statistics" }
func (*shelfTimeCmd) Usage() string {
	return `ssa shelftime [-opening <csv>] [-asof <time>] <transactions.csv>

  Displays shelf-time statistics by group, product and location, plus
  monthly consumption trends. Groups with no consumption history are
  reported with an explicit no-data status.
`
}

func (c *shelfTimeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opening, "opening", "", "Opening stock CSV, loaded as inbound rows before the transactions.")
	f.StringVar(&c.asof, "asof", "", "Reference time for aging (defaults to now).")
}

func (c *shelfTimeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ShelfTimeMarkdown(analysis, cfg.Currency))
	return subcommands.ExitSuccess
}
