package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vsrin/shelfstat/agent"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	opening string
	asof    string
	prompt  string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive AI session over the analysis"
}
func (*assistCmd) Usage() string {
	return `ssa assist [-opening <csv>] [-asof <time>] [-prompt <text>] <transactions.csv>

  Runs the FIFO analysis and starts an interactive assistant that can
  read the computed reports and search the web for demand context.
  Requires a configured Gemini API key in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opening, "opening", "", "Opening stock CSV, loaded as inbound rows before the transactions.")
	f.StringVar(&c.asof, "asof", "", "Reference time for aging (defaults to now).")
	f.StringVar(&c.prompt, "prompt", "", "Initial question to ask before reading from the terminal.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	stockkeeper := agent.NewStockkeeper(analysis, cfg.bucketSpecs(), cfg.Currency)
	forecaster := agent.NewForecaster()
	a := agent.New(os.Stdout, os.Stdin, stockkeeper, forecaster)

	if err := a.Run(ctx, client, c.prompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
