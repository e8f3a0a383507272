// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/tmonk/tracker"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&clearCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")

	c.Register(&currencyCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var statePath = flag.String("state-path", "", "Path to the state directory holding the ledger files (default $PFT_HOME or ~/.pft)")

// StatePath resolves the state directory: the -state-path flag when given,
// then $PFT_HOME, then ~/.pft. Resolved at use time so that a .env loaded
// at startup is honored.
func StatePath() string {
	if *statePath != "" {
		return *statePath
	}
	if dir := os.Getenv("PFT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pft"
	}
	return filepath.Join(home, ".pft")
}

// openTracker opens the store in the app state directory and runs the
// one-time legacy migration before handing it to the command.
func openTracker() (*tracker.Tracker, error) {
	store, err := tracker.OpenStore(StatePath())
	if err != nil {
		return nil, err
	}
	k := tracker.NewTracker(store, stdinConfirmer{}, consoleNotifier{})
	if err := k.MigrateLegacy(); err != nil {
		return nil, err
	}
	return k, nil
}

// stdinConfirmer asks for confirmation on the terminal, defaulting to no.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// consoleNotifier prints outcome messages to the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println("✅", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "❌", msg) }
func (consoleNotifier) Info(msg string)    { fmt.Println("ℹ️", msg) }

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
