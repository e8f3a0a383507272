package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tmonk/tracker"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all transactions to a JSON snapshot" }
func (*exportCmd) Usage() string {
	return `pft export [-o <file>]

  Writes all transactions as a pretty-printed JSON array. The default
  file name carries today's date; "-" writes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", tracker.ExportFilename(tracker.Today()), `Output file, or "-" for stdout.`)
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	k, err := openTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		if err := tracker.ExportSnapshot(os.Stdout, k.Store().Transactions()); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	f, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := k.Export(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
