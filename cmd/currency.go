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

// currencyCmd holds the flags for the 'currency' subcommand.
type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or switch the active currency" }
func (*currencyCmd) Usage() string {
	return `pft currency [<code>]

  Without argument, lists the selectable currencies and marks the
  active one. With a code, switches the active currency. Existing
  transactions keep the currency they were recorded in.
`
}

func (*currencyCmd) SetFlags(*flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.Currencies(tracker.Currencies(), k.Store().Currency()))
		return subcommands.ExitSuccess
	}

	cur, err := k.SetActiveCurrency(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Printf("✅ Active currency is now %s\n", cur)
	return subcommands.ExitSuccess
}
