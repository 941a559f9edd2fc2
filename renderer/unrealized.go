package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/mtf"
)

// UnrealizedMarkdown renders the profit of selling each open position at its
// quoted price, measured against the effective average price. Positions
// without a quote show "-" and are left out of the total.
func UnrealizedMarkdown(ps []mtf.Position, quotes map[string]mtf.Money) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Unrealized P&L\n\n")
	if len(ps) == 0 {
		fmt.Fprint(&b, "No open position.\n")
		return b.String()
	}

	table(&b, ":Symbol", "Qty", "Avg Buy", "Price", "Unrealized", "Net of Interest")
	var total, net mtf.Money
	for _, p := range ps {
		price, ok := quotes[p.Symbol]
		if !ok || !price.IsPositive() {
			row(&b, p.Symbol, p.Quantity.String(), p.AvgPrice.String(), "-", "-", "-")
			continue
		}
		u := p.Unrealized(price)
		total = total.Add(u)
		net = net.Add(u.Sub(p.Interest))
		row(&b,
			p.Symbol,
			p.Quantity.String(),
			p.AvgPrice.String(),
			price.String(),
			u.SignedString(),
			u.Sub(p.Interest).SignedString(),
		)
	}
	row(&b, bold("Total", "", "", "", total.SignedString(), net.SignedString())...)
	return b.String()
}
