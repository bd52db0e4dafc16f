package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/timeinmarket/cmd"
)

// completion describes the command line for shell completion. Running
// `COMP_INSTALL=1 tims` installs it into the shell profile.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"simulate": {Flags: map[string]complete.Predictor{
			"i":        predict.Something,
			"symbol":   predict.Something,
			"amount":   predict.Something,
			"freq":     predict.Set{"monthly", "weekly"},
			"day":      predict.Something,
			"weekday":  predict.Set{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			"from":     predict.Something,
			"to":       predict.Something,
			"currency": predict.Something,
			"table":    predict.Nothing,
			"last":     predict.Something,
		}},
		"search": {Flags: map[string]complete.Predictor{
			"quote": predict.Nothing,
		}},
		"history": {Flags: map[string]complete.Predictor{
			"symbol": predict.Something,
			"from":   predict.Something,
			"to":     predict.Something,
		}},
		"topic":  {Args: predict.Set{"readme", "schedules", "dates"}},
		"assist": {},
	},
}

func main() {
	completion.Complete("tims")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
