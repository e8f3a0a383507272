package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by id" }
func (*deleteCmd) Usage() string {
	return `pft delete <id>

  Deletes the transaction with the given id, after confirmation.
  Ids are shown by 'pft list'.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := k.DeleteTransaction(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
