package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/mtf"
)

// OpenPositionsMarkdown renders one row per open position with its
// breakeven and target prices, custom being the user's own target.
func OpenPositionsMarkdown(ps []mtf.Position, custom mtf.Percent) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Open Positions\n\n")
	if len(ps) == 0 {
		fmt.Fprint(&b, "No open position.\n")
		return b.String()
	}

	percents := targetColumns(custom)
	columns := []string{":Symbol", "Qty", "Avg Buy", "Interest", "Days", "Breakeven"}
	for _, pct := range percents {
		columns = append(columns, "+"+pct.String())
	}
	table(&b, columns...)

	for _, p := range ps {
		symbol := p.Symbol
		if n := len(p.Lots); n > 1 {
			symbol = fmt.Sprintf("%s (%d lots)", p.Symbol, n)
		}
		cells := []string{
			symbol,
			p.Quantity.String(),
			p.AvgPrice.String(),
			p.Interest.String(),
			days(p.DaysHeld),
			p.Breakeven.String(),
		}
		for _, pct := range percents {
			cells = append(cells, target(p, pct))
		}
		row(&b, cells...)
	}
	return b.String()
}

// LotsMarkdown renders the open lots of p, oldest first.
func LotsMarkdown(p mtf.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s Lots\n\n", p.Symbol)
	fmt.Fprintf(&b, "Bought on %s, held %d days, %s of interest per day.\n\n", p.BuyDate.Display(), p.DaysHeld, p.DailyInterest)

	table(&b, ":Date", "Qty", "Price", "Charges", "Days", "Interest")
	for _, l := range p.Lots {
		charges := l.Charges.String()
		if l.Source == mtf.ChargesEstimated {
			charges += " (est.)"
		}
		row(&b,
			l.Date.Display(),
			l.Quantity.String(),
			l.Price.String(),
			charges,
			days(l.Days),
			l.Interest.String(),
		)
	}
	row(&b, bold("Total", p.Quantity.String(), p.AvgPrice.String(), p.Charges.String(), "", p.Interest.String())...)
	return b.String()
}
