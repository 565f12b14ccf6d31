// Package cmd implements the CLI application behind ssa.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/vsrin/shelfstat"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&agingCmd{}, "reports")
	c.Register(&shelfTimeCmd{}, "reports")
	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application with a very short lifecycle, a package-level logger is fine.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// config is the optional shelfstat.yaml in the working directory. Flags
// take precedence over it; defaults cover the no-file case entirely.
type config struct {
	OutputDir string         `mapstructure:"output_dir"`
	Currency  string         `mapstructure:"currency"`
	AsOf      string         `mapstructure:"as_of"`
	Buckets   []bucketConfig `mapstructure:"buckets"`
}

type bucketConfig struct {
	Name    string `mapstructure:"name"`
	MaxDays int    `mapstructure:"max_days"`
}

func (c config) bucketSpecs() []shelfstat.BucketSpec {
	if len(c.Buckets) == 0 {
		return shelfstat.DefaultBuckets()
	}
	specs := make([]shelfstat.BucketSpec, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		specs = append(specs, shelfstat.BucketSpec{Name: b.Name, MaxDays: b.MaxDays})
	}
	return specs
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetConfigName("shelfstat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetDefault("output_dir", ".")
	v.SetDefault("currency", "INR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return config{}, fmt.Errorf("cannot parse config file: %w", err)
	}
	return c, nil
}

// loadLedger loads the transaction file, merges the optional opening-stock
// file, and logs what was kept and dropped.
func loadLedger(path, opening string) (*shelfstat.Ledger, error) {
	ledger, report, err := shelfstat.LoadTransactionsFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", path).Int("rows", report.Loaded).Msg("loaded transactions")
	for reason, n := range report.Skipped {
		logger.Warn().Str("reason", reason).Int("rows", n).Msg("skipped rows")
	}

	if opening != "" {
		rows, openReport, err := shelfstat.LoadOpeningStockFile(opening)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("file", opening).Int("rows", openReport.Loaded).Msg("loaded opening stock")
		for reason, n := range openReport.Skipped {
			logger.Warn().Str("reason", reason).Int("rows", n).Msg("skipped opening rows")
		}
		ledger.Append(rows...)
	}
	return ledger, nil
}

// referenceTime resolves the aging reference: the -asof flag wins over the
// config file; both empty means now.
func referenceTime(asof string, cfg config) (time.Time, error) {
	if asof == "" {
		asof = cfg.AsOf
	}
	if asof == "" {
		return time.Now(), nil
	}
	t, err := shelfstat.ParseTime(asof)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference time: %w", err)
	}
	return t, nil
}

// runAnalysis is the shared load-and-match path of the report commands.
func runAnalysis(path, opening, asof string, cfg config) (*shelfstat.Ledger, *shelfstat.Analysis, error) {
	ledger, err := loadLedger(path, opening)
	if err != nil {
		return nil, nil, err
	}
	ref, err := referenceTime(asof, cfg)
	if err != nil {
		return nil, nil, err
	}
	analysis := shelfstat.Analyze(ledger, ref)
	for _, s := range analysis.Shortfalls {
		logger.Warn().
			Str("sku", s.SKU).
			Str("location", s.Location).
			Time("at", s.Time).
			Str("qty", s.Quantity.String()).
			Msg("outbound exceeded known stock")
	}
	return ledger, analysis, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be used.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
