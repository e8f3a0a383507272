package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// clearCmd holds the flags for the 'clear' subcommand.
type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all transactions" }
func (*clearCmd) Usage() string {
	return `pft clear

  Deletes every transaction, after confirmation. The active currency
  preference is kept.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := k.ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
