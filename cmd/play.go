package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockmarket/console"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// playCmd runs an interactive trading session.
type playCmd struct {
	layout string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "start an interactive trading session" }
func (*playCmd) Usage() string {
	return `sms play [-layout classic|table]

  Logs a player in, creating them if needed, and serves the trading menu.
  Players and stocks are saved when the session ends. A players file that
  cannot be loaded stops the command, a stocks file that cannot be loaded
  is left as is.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.layout, "layout", c.layout, "Menu layout: classic (1 assets, 2 buy, 3 sell, 0 exit) or table (1 market, 2 buy, 3 sell, 4 save and exit, 5 portfolio)")
}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	layout, err := console.ParseLayout(c.layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	setupLogger()
	l := log.With().Str("session", uuid.NewString()).Logger()

	stocks, stocksWritable := OpenStocks()
	players, playersWritable := OpenPlayers()
	if !playersWritable {
		// Saving at exit would replace the players it could not read.
		fmt.Fprintf(os.Stderr, "Error: cannot load %s, fix or move it before playing\n", players.Path())
		return subcommands.ExitFailure
	}

	session := console.New(os.Stdin, os.Stdout, stocks.Market(), players,
		console.WithLayout(layout),
		console.WithRenderer(markdownRenderer()),
		console.WithLogger(l),
	)
	runErr := session.Run(ctx)
	if runErr != nil {
		l.Error().Err(runErr).Msg("session-aborted")
	}

	// Save whatever happened during the session. A stocks file that could
	// not be loaded is kept as is.
	status := subcommands.ExitSuccess
	if err := players.Save(); err != nil {
		l.Error().Err(err).Msg("save-players")
		fmt.Fprintf(os.Stderr, "Error saving players: %v\n", err)
		status = subcommands.ExitFailure
	}
	if !stocksWritable {
		l.Warn().Str("file", stocks.Path()).Msg("stocks file kept as is, it could not be loaded")
	} else if err := stocks.Save(); err != nil {
		l.Error().Err(err).Msg("save-stocks")
		fmt.Fprintf(os.Stderr, "Error saving stocks: %v\n", err)
		status = subcommands.ExitFailure
	}
	if runErr != nil {
		return subcommands.ExitFailure
	}
	return status
}
