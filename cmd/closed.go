package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
)

// closedCmd holds the flags for the 'closed' subcommand.
type closedCmd struct {
	engineFlags
	legs bool
	sort string
}

func (*closedCmd) Name() string     { return "closed" }
func (*closedCmd) Synopsis() string { return "display realized profit of closed positions" }
func (*closedCmd) Usage() string {
	return `mtf closed [-i <trades>] [-legs] [-sort <key>[:desc]]

  Displays the profit realized by the sells of the trade log, before and
  after the interest paid on the financed lots they closed.

  Sort keys: symbol, interest, pnl.
`
}

func (c *closedCmd) SetFlags(f *flag.FlagSet) {
	c.engineFlags.SetFlags(f)
	f.BoolVar(&c.legs, "legs", false, "Show every matched buy lot")
	f.StringVar(&c.sort, "sort", "symbol", "Sort positions by symbol, interest or pnl, append ':desc' for descending order")
}

func (c *closedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	order, err := renderer.ParseSort(c.sort, renderer.ClosedKeys...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	res, cfg, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}

	renderer.SortClosed(res.Closed, order)
	var b strings.Builder
	b.WriteString(title("Closed Positions", cfg.AsOf))
	b.WriteString(renderer.ClosedPositionsMarkdown(res.Closed))
	if c.legs {
		for _, cp := range res.Closed {
			b.WriteString("\n")
			b.WriteString(renderer.ClosedLegsMarkdown(cp))
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
