package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/etnz/mtf/quote"
	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// unrealizedCmd holds the flags for the 'unrealized' subcommand.
type unrealizedCmd struct {
	engineFlags
	quoteFlags
	prices priceFlags
	fetch  bool
}

func (*unrealizedCmd) Name() string     { return "unrealized" }
func (*unrealizedCmd) Synopsis() string { return "display the profit of selling open positions at current prices" }
func (*unrealizedCmd) Usage() string {
	return `mtf unrealized [-i <trades>] [-p SYMBOL=PRICE]... [-fetch]

  Displays the unrealized profit of each open position, at the prices given
  with -p or fetched from the quote service with -fetch. Prices given with -p
  take precedence over fetched ones.

Usage Examples:
$ mtf unrealized -i trades.csv -p INFY=1520.5 -p TCS=3390
`
}

func (c *unrealizedCmd) SetFlags(f *flag.FlagSet) {
	c.engineFlags.SetFlags(f)
	c.quoteFlags.SetFlags(f)
	c.prices = priceFlags{}
	f.Var(c.prices, "p", "Current price of a symbol as SYMBOL=PRICE, can be repeated")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch current prices from the quote service")
}

func (c *unrealizedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, cfg, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}

	prices := map[string]decimal.Decimal{}
	if c.fetch {
		src, err := c.source()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fetched, err := quote.FetchAll(ctx, src, symbols(res.Open))
		if err != nil {
			log.Printf("warning: %v", err)
		}
		maps.Copy(prices, fetched)
	}
	maps.Copy(prices, c.prices)

	var b strings.Builder
	b.WriteString(title("Unrealized P&L", cfg.AsOf))
	b.WriteString(renderer.UnrealizedMarkdown(res.Open, money(prices, cfg.Currency)))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
