package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	engineFlags
	product string
	copy    bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write breakeven sell orders for open positions" }
func (*exportCmd) Usage() string {
	return `mtf export [-i <trades>] [-product <type>] [-copy]

  Writes one sell order per open position at its breakeven price, in the
  basket order format:

    EXCH,SYMBOL,SELL,QTY,PRICE,PRODUCT

  With -copy, the orders are also copied to the terminal clipboard.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.engineFlags.SetFlags(f)
	f.StringVar(&c.product, "product", "", "Product of the orders, the order type of each position by default")
	f.BoolVar(&c.copy, "copy", false, "Copy the orders to the clipboard (OSC 52 terminals)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, _, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}
	if len(res.Open) == 0 {
		fmt.Fprintln(os.Stderr, "No open position to export.")
		return subcommands.ExitSuccess
	}

	orders := renderer.SellOrders(res.Open, c.product)
	fmt.Fprint(out, orders)
	if c.copy {
		if _, err := osc52.New(orders).WriteTo(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Copied %d orders to the clipboard.\n", len(res.Open))
	}
	return subcommands.ExitSuccess
}
