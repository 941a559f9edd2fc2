// Package renderer formats processing results as markdown.
//
// Every function returns a self contained markdown section, starting with a
// level 2 title, so that commands can pick and assemble them.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/mtf"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// table writes a markdown table header. Columns starting with ':' are left
// aligned, the others right aligned.
func table(w io.Writer, columns ...string) {
	var head, align []string
	for _, c := range columns {
		if name, ok := strings.CutPrefix(c, ":"); ok {
			head = append(head, name)
			align = append(align, ":---")
			continue
		}
		head = append(head, c)
		align = append(align, "---:")
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(head, " | "))
	fmt.Fprintf(w, "|%s|\n", strings.Join(align, "|"))
}

// row writes a markdown table row.
func row(w io.Writer, cells ...string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

// bold wraps every cell in strong emphasis, for total rows.
func bold(cells ...string) []string {
	res := make([]string, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		res[i] = "**" + c + "**"
	}
	return res
}

// days formats a number of days held.
func days(n int) string { return fmt.Sprintf("%dd", n) }

// targetColumns returns the target percentages shown in position tables:
// 1%, 2%, 5% and the custom target.
func targetColumns(custom mtf.Percent) []mtf.Percent {
	return mtf.PercentSet([]mtf.Percent{1, 2, 5}, []mtf.Percent{custom})
}

// target formats the price reaching pct, or "-" when it was not computed.
func target(p mtf.Position, pct mtf.Percent) string {
	if m, ok := p.Target(pct); ok {
		return m.String()
	}
	return "-"
}
