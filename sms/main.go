package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockmarket/cmd"
	"github.com/etnz/stockmarket/config"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	cfg := config.Load()
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander, flag.CommandLine, cfg)

	// Answers shell completion requests and exits, otherwise does nothing.
	complete.Complete("sms", cmd.Completion(flag.CommandLine, cfg))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
