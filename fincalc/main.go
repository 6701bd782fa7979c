package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Answers shell completion requests and returns without doing
	// anything otherwise.
	cmd.Completion().Complete("fincalc")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
