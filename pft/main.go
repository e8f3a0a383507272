package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/tmonk/tracker/cmd"
)

// completion describes the CLI for shell completion. It runs before flag
// parsing and exits on its own when invoked by the shell.
func completion() {
	categories := predict.Set{
		"food", "transport", "shopping", "entertainment", "health",
		"bills", "education", "travel", "other",
		"salary", "freelance", "business", "investment", "bonus",
		"gift", "refund", "other-income",
	}
	types := predict.Set{"expense", "income"}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"state-path": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"t": types,
				"a": predict.Nothing,
				"c": categories,
				"d": predict.Nothing,
			}},
			"delete": {},
			"clear":  {},
			"list": {Flags: map[string]complete.Predictor{
				"t": types,
				"c": categories,
			}},
			"summary":   {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"breakdown": {},
			"currency":  {},
			"export":    {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":    {Args: predict.Files("*.json")},
			"topic":     {},
			"assist":    {},
		},
	}
	c.Complete("pft")
}

func main() {
	// A .env in the working directory may carry PFT_HOME and GEMINI_API_KEY.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
