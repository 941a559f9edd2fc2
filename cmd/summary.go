package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/mtf/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	engineFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the totals of open and closed positions" }
func (*summaryCmd) Usage() string {
	return `mtf summary [-i <trades>] [-d <date>]

  Displays the capital deployed, the interest accrued and accruing per day,
  the realized profit, and the sells that found no open lot to close.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.engineFlags.SetFlags(f) }

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, cfg, status := c.process()
	if status != subcommands.ExitSuccess {
		return status
	}
	var b strings.Builder
	b.WriteString(title("MTF Summary", cfg.AsOf))
	b.WriteString(renderer.SummaryMarkdown(res.Summary()))
	renderer.ConditionalBlock(&b, func(w io.Writer) bool {
		u := renderer.UnmatchedMarkdown(res.Unmatched)
		fmt.Fprintf(w, "\n%s", u)
		return u != ""
	})
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
