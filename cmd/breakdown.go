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

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct{}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display expenses split by category" }
func (*breakdownCmd) Usage() string {
	return `pft breakdown

  Displays the expense total per category for the active currency,
  sorted by amount, with each category's share of the total.
`
}

func (*breakdownCmd) SetFlags(*flag.FlagSet) {}

func (c *breakdownCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	cur := k.Store().Currency()
	b := tracker.CategoryBreakdown(k.Store().Transactions(), cur.Code)
	printMarkdown(renderer.Breakdown(b, cur))
	return subcommands.ExitSuccess
}
