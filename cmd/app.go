// Package cmd implements the CLI application of the stock market simulator.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"maps"
	"slices"

	"github.com/etnz/stockmarket"
	"github.com/etnz/stockmarket/config"
	"github.com/etnz/stockmarket/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	playersFile *string
	stocksFile  *string
	logLevel    *string
	logPretty   *bool
	plain       *bool
)

// Commands returns the application commands, grouped by topic.
func Commands(cfg *config.Config) map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"trading": {&playCmd{layout: cfg.Layout}},
		"market":  {&marketCmd{}, &importCmd{}},
		"players": {&playersCmd{}},
		"help":    {&topicCmd{}},
	}
}

// Register the global flags on fs, with defaults from cfg, and the
// subcommands. A main package will call Register() and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander, fs *flag.FlagSet, cfg *config.Config) {
	registerFlags(fs, cfg)

	groups := Commands(cfg)
	for _, group := range slices.Sorted(maps.Keys(groups)) {
		for _, cmd := range groups[group] {
			c.Register(cmd, group)
		}
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

func registerFlags(fs *flag.FlagSet, cfg *config.Config) {
	playersFile = fs.String("players-file", cfg.PlayersFile, "Path to the players file")
	stocksFile = fs.String("stocks-file", cfg.StocksFile, "Path to the stocks file")
	logLevel = fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error or disabled")
	logPretty = fs.Bool("log-pretty", cfg.LogPretty, "Human-readable logs on stderr instead of JSON")
	plain = fs.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
}

// setupLogger installs the application logger.
func setupLogger() {
	logger.SetGlobalLogger(logger.New(logger.Config{Level: *logLevel, Pretty: *logPretty}))
}

// OpenStocks loads the stocks repository. A missing or unreadable stocks
// file is not an error: the default market is used instead. writable is
// false when the file exists but could not be used, saving would replace
// it with the default market.
func OpenStocks() (repo *stockmarket.StockRepository, writable bool) {
	repo = stockmarket.NewStockRepository(*stocksFile)
	err := repo.Load()
	if err != nil {
		logFallback(err).Err(err).Msg("using the default market")
	}
	return repo, canOverwrite(err)
}

// OpenPlayers loads the players repository. A missing players file means
// there are no players yet. writable is false when the file exists but
// could not be fully read, saving would lose players.
func OpenPlayers() (repo *stockmarket.PlayerRepository, writable bool) {
	repo = stockmarket.NewPlayerRepository(*playersFile)
	err := repo.Load()
	if err != nil {
		logFallback(err).Err(err).Msg("players file not loaded")
	}
	return repo, canOverwrite(err)
}

// canOverwrite reports whether a file can be saved over after its Load
// returned err.
func canOverwrite(err error) bool {
	return err == nil || errors.Is(err, fs.ErrNotExist)
}

// logFallback picks the level of a repository fallback: a missing file is
// expected on a first run.
func logFallback(err error) *zerolog.Event {
	if errors.Is(err, fs.ErrNotExist) {
		return log.Info()
	}
	return log.Warn()
}
