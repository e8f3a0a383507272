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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	typ      string
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, newest first" }
func (*listCmd) Usage() string {
	return `pft list [-t <type>] [-c <category>]

  Lists transactions in display order, optionally filtered by type
  and category.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Only show this transaction type: expense or income.")
	f.StringVar(&c.category, "c", "", "Only show this category.")
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var typ tracker.TxType
	if c.typ != "" {
		t, err := tracker.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		typ = t
	}

	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	filtered := typ != "" || c.category != ""
	list := tracker.FilterBy(k.Store().Transactions(), typ, tracker.Category(c.category))
	printMarkdown(renderer.Transactions(list, k.Store().Currency(), tracker.Today(), filtered))
	return subcommands.ExitSuccess
}
