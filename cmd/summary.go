package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tmonk/tracker"
	"github.com/tmonk/tracker/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display running totals for the active currency" }
func (*summaryCmd) Usage() string {
	return `pft summary [-d <date>]

  Displays total income, total expenses, net balance, and the expense
  sums for the month and week containing the given date. Transactions
  in other currencies are ignored, never converted.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tracker.Today().String(), "Reference date for the monthly and weekly windows.")
}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := tracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	s := tracker.NewSummary(k.Store().Transactions(), k.Store().Currency(), on)
	printMarkdown(renderer.Summary(s))
	return subcommands.ExitSuccess
}
