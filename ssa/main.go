// Command ssa analyzes inventory shelf time from a CSV transaction log.
//
// Transactions are replayed per (SKU, location) through a FIFO queue of
// cost layers; the resulting shelf-time records feed the report files
// and the console views. Run `ssa help` for the list of subcommands, or
// pass a single CSV file to run the default analysis:
//
//	ssa inventory_data.csv
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vsrin/shelfstat/cmd"
)

func main() {
	completion()

	// A lone CSV argument means the default full analysis.
	if len(os.Args) == 2 {
		if fi, err := os.Stat(os.Args[1]); err == nil && !fi.IsDir() {
			os.Args = []string{os.Args[0], "analyze", os.Args[1]}
		}
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits the process when invoked
// by the shell's completion hook.
func completion() {
	csvArg := predict.Files("*.csv")
	analysisFlags := map[string]complete.Predictor{
		"opening": predict.Files("*.csv"),
		"asof":    predict.Something,
	}

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"opening": predict.Files("*.csv"),
					"asof":    predict.Something,
					"out":     predict.Dirs("*"),
					"q":       predict.Nothing,
				},
				Args: csvArg,
			},
			"summary":   {Flags: analysisFlags, Args: csvArg},
			"aging":     {Flags: analysisFlags, Args: csvArg},
			"shelftime": {Flags: analysisFlags, Args: csvArg},
			"assist": {
				Flags: map[string]complete.Predictor{
					"opening": predict.Files("*.csv"),
					"asof":    predict.Something,
					"prompt":  predict.Something,
				},
				Args: csvArg,
			},
			"topic": {Args: predict.Something},
			"help":  {},
		},
		Args: csvArg,
	}
	c.Complete("ssa")
}
