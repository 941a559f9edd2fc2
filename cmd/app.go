// Package cmd implements the CLI application to track MTF positions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/etnz/mtf"
	"github.com/etnz/mtf/date"
	"github.com/etnz/mtf/tradelog"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "reports")
	}
	c.Register(&watchCmd{}, "quotes")
}

// Commands are the report subcommands, they all read a trade log.
var Commands = []subcommands.Command{
	&positionsCmd{},
	&closedCmd{},
	&summaryCmd{},
	&unrealizedCmd{},
	&exportCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rawOutput = flag.Bool("raw", false, "Print markdown reports without terminal styling")

// out is where reports are written.
var out io.Writer = os.Stdout

// stdin is where the trade log is read from when no input file is given.
var stdin io.Reader = os.Stdin

// engineFlags are the flags of every command reading a trade log.
type engineFlags struct {
	input    string
	format   string
	funded   string
	delay    int
	target   float64
	asOf     string
	currency string
}

func (e *engineFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.input, "i", "-", "Trade log file to read, '-' for the standard input")
	f.StringVar(&e.format, "format", "auto", "Trade log format: auto, json, ledger, csv or blocks")
	f.StringVar(&e.funded, "funded", "1", "Fraction of each purchase financed by the broker, between 0 and 1")
	f.IntVar(&e.delay, "delay", 0, "Days subtracted from the holding period of open lots before accruing interest")
	f.Float64Var(&e.target, "target", 10, "Custom profit target, in percent")
	f.StringVar(&e.asOf, "d", "", "Date interest accrues until, today by default. See the date formats of trade logs.")
	f.StringVar(&e.currency, "currency", mtf.DefaultCurrency, "Currency of the trade log prices")
}

// config returns the processing configuration set by the flags.
func (e *engineFlags) config() (mtf.Config, error) {
	asOf := date.Today()
	if e.asOf != "" {
		d, err := date.ParseTradeDate(e.asOf)
		if err != nil {
			return mtf.Config{}, fmt.Errorf("invalid -d: %w", err)
		}
		asOf = d
	}
	cfg := mtf.DefaultConfig(asOf)
	funded, err := decimal.NewFromString(e.funded)
	if err != nil {
		return mtf.Config{}, fmt.Errorf("invalid -funded %q: %w", e.funded, err)
	}
	cfg.FundedRatio = funded
	cfg.InterestDelay = e.delay
	cfg.CustomTarget = mtf.Percent(e.target)
	cfg.Currency = strings.ToUpper(e.currency)
	return cfg, cfg.Validate()
}

// readInput returns the content of the trade log.
func (e *engineFlags) readInput() (string, error) {
	if e.input == "" || e.input == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(e.input)
	return string(data), err
}

// process reads and processes the trade log. Usage errors are reported
// with ExitUsageError, reading errors with ExitFailure.
func (e *engineFlags) process() (*mtf.Result, mtf.Config, subcommands.ExitStatus) {
	cfg, err := e.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, cfg, subcommands.ExitUsageError
	}
	format, err := tradelog.ParseFormat(e.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, cfg, subcommands.ExitUsageError
	}
	input, err := e.readInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading trade log %q: %v\n", e.input, err)
		return nil, cfg, subcommands.ExitFailure
	}
	raws, detected, err := tradelog.ParseAs(input, format)
	if errors.Is(err, tradelog.ErrNoTrades) {
		fmt.Fprintf(os.Stderr, "Error: no trades found in %q\n", e.input)
		return nil, cfg, subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing trade log %q: %v\n", e.input, err)
		return nil, cfg, subcommands.ExitFailure
	}

	n := mtf.Normalizer{Now: cfg.AsOf, Currency: cfg.Currency}
	trades := make([]mtf.Trade, 0, len(raws))
	for _, raw := range raws {
		t := n.Normalize(raw)
		if t.DateFallback {
			log.Printf("warning: %s %s has an invalid date %q, using %s instead", t.Side, t.Symbol, t.RawDate, cfg.AsOf)
		}
		trades = append(trades, t)
	}
	res := mtf.Process(trades, cfg)
	if res.Skipped > 0 {
		log.Printf("warning: %d trades of the %v trade log have no quantity and were ignored", res.Skipped, detected)
	}
	return res, cfg, subcommands.ExitSuccess
}

// title returns the report title.
func title(name string, asOf date.Date) string {
	return fmt.Sprintf("# %s as of %s\n\n", name, asOf.Display())
}
