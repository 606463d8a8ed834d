package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockmarket/renderer"
	"github.com/google/subcommands"
)

type playersCmd struct{}

func (*playersCmd) Name() string     { return "players" }
func (*playersCmd) Synopsis() string { return "list players with their cash and holdings" }
func (*playersCmd) Usage() string {
	return `sms players

  Lists every saved player, valued at the current market prices.
`
}
func (*playersCmd) SetFlags(*flag.FlagSet) {}

func (*playersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	setupLogger()
	players, _ := OpenPlayers()
	if players.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No players in %s\n", players.Path())
		return subcommands.ExitSuccess
	}
	stocks, _ := OpenStocks()
	printMarkdown(renderer.PlayersMarkdown(players.All(), stocks.Market()))
	return subcommands.ExitSuccess
}
