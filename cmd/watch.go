package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/etnz/mtf"
	"github.com/etnz/mtf/quote"
	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	engineFlags
	quoteFlags
	schedule string
	verbose  bool
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "poll quotes and display unrealized profit until interrupted" }
func (*watchCmd) Usage() string {
	return `mtf watch [-i <trades>] [-every <schedule>]

  Fetches the price of every open position from the quote service on a cron
  schedule, and displays the unrealized profit after each fetch. Stop with
  Ctrl+C.

Usage Examples:
$ MTF_QUOTE_URL='https://example.com/quote/{symbol}' MTF_QUOTE_PATH='$.lastPrice' mtf watch -every '@every 5m'
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	c.engineFlags.SetFlags(f)
	c.quoteFlags.SetFlags(f)
	f.StringVar(&c.schedule, "every", quote.DefaultSchedule, "Cron schedule of the quote polls, like '@every 15m' or '*/5 9-15 * * MON-FRI'")
	f.BoolVar(&c.verbose, "v", false, "Log every poll")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, cfg, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}
	if len(res.Open) == 0 {
		fmt.Fprintln(os.Stderr, "No open position to watch.")
		return subcommands.ExitSuccess
	}
	src, err := c.source()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	p := &quote.Poller{
		Source:   src,
		Symbols:  symbols(res.Open),
		Schedule: c.schedule,
		Log:      logger,
		OnPrices: func(prices map[string]decimal.Decimal) {
			printMarkdown(watchReport(res, cfg, prices, time.Now()))
		},
	}
	if err := p.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// watchReport renders the unrealized profit at prices fetched at.
func watchReport(res *mtf.Result, cfg mtf.Config, prices map[string]decimal.Decimal, at time.Time) string {
	var b strings.Builder
	b.WriteString(title("Unrealized P&L", cfg.AsOf))
	fmt.Fprintf(&b, "Quotes fetched at %s.\n\n", at.Format(time.TimeOnly))
	b.WriteString(renderer.UnrealizedMarkdown(res.Open, money(prices, cfg.Currency)))
	return b.String()
}
