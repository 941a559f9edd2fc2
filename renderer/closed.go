package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/mtf"
)

// ClosedPositionsMarkdown renders the realized profit of each closed
// position, the total row first.
func ClosedPositionsMarkdown(cs []mtf.ClosedPosition) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Closed Positions\n\n")
	if len(cs) == 0 {
		fmt.Fprint(&b, "No closed position.\n")
		return b.String()
	}

	var qty mtf.Quantity
	var gross, interest, net mtf.Money
	for _, c := range cs {
		qty = qty.Add(c.Quantity)
		gross = gross.Add(c.GrossPnL)
		interest = interest.Add(c.Interest)
		net = net.Add(c.NetPnL)
	}

	table(&b, ":Symbol", "Qty", "Gross P&L", "Interest", "Net P&L")
	row(&b, bold("Total", qty.String(), gross.SignedString(), interest.String(), net.SignedString())...)
	for _, c := range cs {
		row(&b,
			c.Symbol,
			c.Quantity.String(),
			c.GrossPnL.SignedString(),
			c.Interest.String(),
			c.NetPnL.SignedString(),
		)
	}
	return b.String()
}

// ClosedLegsMarkdown renders every buy lot matched by the sells of c.
func ClosedLegsMarkdown(c mtf.ClosedPosition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Closed Legs\n\n", c.Symbol)
	table(&b, ":Bought", ":Sold", "Qty", "Buy", "Sell", "Charges", "Days", "Interest", "Net P&L")
	for _, l := range c.Legs {
		row(&b,
			l.BuyDate.Display(),
			l.SellDate.Display(),
			l.Quantity.String(),
			l.BuyPrice.String(),
			l.SellPrice.String(),
			l.BuyCharges.Add(l.SellCharges).String(),
			days(l.DaysHeld),
			l.Interest.String(),
			l.NetPnL.SignedString(),
		)
	}
	return b.String()
}
