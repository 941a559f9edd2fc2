package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/mtf"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the totals of a processing pass.
func SummaryMarkdown(s mtf.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Open positions", fmt.Sprint(s.OpenPositions)},
			{"Capital deployed", s.CapitalDeployed.String()},
			{"Accrued interest", s.Interest.String()},
			{"Daily interest", s.DailyInterest.String()},
			{"Closed positions", fmt.Sprint(s.ClosedPositions)},
			{"Realized gross P&L", s.GrossPnL.SignedString()},
			{"Realized interest", s.ClosedInterest.String()},
			{md.Bold("Realized net P&L"), md.Bold(s.NetPnL.SignedString())},
		},
	})
	return strings.TrimRight(doc.String(), "\n") + "\n"
}

// UnmatchedMarkdown renders the sells that found no open lot. It is empty
// when there are none.
func UnmatchedMarkdown(us []mtf.UnmatchedSell) string {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Reconciliation\n\n")
		for _, u := range us {
			fmt.Fprintf(w, "- %s: sold %s more than held on %s, the excess was ignored.\n", u.Symbol, u.Quantity, u.Date.Display())
		}
		return len(us) > 0
	})
	return b.String()
}
