package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/openjournal/tradelog/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It must be
// checked before flag.Parse, complete exits the process when invoked by the
// shell.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"import": {Flags: map[string]complete.Predictor{
			"f":         predict.Files("*.csv"),
			"overrides": predict.Files("*.yaml"),
			"catalog":   predict.Files("*.json"),
			"user":      predict.Something,
		}},
		"log":       {Flags: map[string]complete.Predictor{"s": predict.Something, "p": predict.Set{"long", "short"}}},
		"close":     {Flags: map[string]complete.Predictor{"id": predict.Something, "result": predict.Something}},
		"rm":        {Flags: map[string]complete.Predictor{"id": predict.Something}},
		"fmt":       {},
		"stats":     {},
		"calendar":  {Flags: map[string]complete.Predictor{"m": predict.Something}},
		"benchmark": {Flags: map[string]complete.Predictor{"capital": predict.Something}},
		"topic":     {},
	},
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
		"currency":    predict.Something,
	},
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
