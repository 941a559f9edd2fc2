package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mtf"
	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
)

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	engineFlags
	lots    bool
	sort    string
	useJSON bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display open positions with interest and target prices" }
func (*positionsCmd) Usage() string {
	return `mtf positions [-i <trades>] [-lots] [-sort <key>[:desc]] [-json]

  Displays the open positions of the trade log: quantity, effective average
  buy price, accrued interest, days held, breakeven and target sell prices.

  Sort keys: symbol, interest, days.

Usage Examples:
# positions of a contract note export, oldest first, with every lot
$ mtf positions -i trades.tsv -sort days:desc -lots

# what if only 75% of the purchases were financed
$ mtf positions -i trades.csv -funded 0.75
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	c.engineFlags.SetFlags(f)
	f.BoolVar(&c.lots, "lots", false, "Show the open lots of each position")
	f.StringVar(&c.sort, "sort", "symbol", "Sort positions by symbol, interest or days, append ':desc' for descending order")
	f.BoolVar(&c.useJSON, "json", false, "Write the whole processing result as JSON instead")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := renderer.ParseSort(c.sort, renderer.OpenKeys...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	res, cfg, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.useJSON {
		if err := mtf.EncodeResult(out, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	renderer.SortOpen(res.Open, order)
	var b strings.Builder
	b.WriteString(title("MTF Positions", cfg.AsOf))
	b.WriteString(renderer.OpenPositionsMarkdown(res.Open, cfg.CustomTarget))
	if c.lots {
		for _, p := range res.Open {
			b.WriteString("\n")
			b.WriteString(renderer.LotsMarkdown(p))
		}
	}
	if u := renderer.UnmatchedMarkdown(res.Unmatched); u != "" {
		b.WriteString("\n")
		b.WriteString(u)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
