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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	typ      string
	amount   string
	category string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `pft add -t <type> -a <amount> -c <category> [-d <date>] <description>

  Records a transaction. The amount is denominated in the active currency,
  which is snapshotted into the record.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "expense", "Transaction type: expense or income.")
	f.StringVar(&c.amount, "a", "", "Amount, a decimal number greater than zero.")
	f.StringVar(&c.category, "c", "", "Category. Run 'pft topic categories' for the list.")
	f.StringVar(&c.date, "d", tracker.Today().String(), "Date of the transaction.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := tracker.ParseTxType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.category != "" && !tracker.KnownCategory(typ, tracker.Category(c.category)) {
		fmt.Fprintf(os.Stderr, "Error: unknown %s category %q, want one of %v\n",
			typ, c.category, tracker.CategoriesFor(typ))
		return subcommands.ExitUsageError
	}

	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	description := f.Arg(0)
	tx, err := k.CreateTransaction(c.typ, description, c.amount, c.category, c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Transaction(tx, tracker.Today()))
	return subcommands.ExitSuccess
}
