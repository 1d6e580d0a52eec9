package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tomtax/tomtax/cmd"
)

// completion describes the CLI for shell completion. It must be invoked
// before flag parsing; it exits by itself when running in completion mode.
func completion(name string) {
	trades := map[string]complete.Predictor{
		"csv":    predict.Files("*.csv"),
		"rates":  predict.Files("*.csv"),
		"splits": predict.Files("*.jsonl"),
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"report":       {Flags: trades},
			"transactions": {Flags: trades},
			"assist":       {Flags: trades},
			"ex":           {Flags: map[string]complete.Predictor{"rates": predict.Files("*.csv")}},
			"fetch":        {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"topic":        {Args: predict.Set{"readme", "fifo", "splits", "rates", "oversold"}},
		},
	}
	c.Complete(name)
}

func main() {
	name := path.Base(os.Args[0])
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
