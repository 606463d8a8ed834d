// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvPlayersFile = "SMS_PLAYERS_FILE"
	EnvStocksFile  = "SMS_STOCKS_FILE"
	EnvLogLevel    = "SMS_LOG_LEVEL"
	EnvLogPretty   = "SMS_LOG_PRETTY"
	EnvLayout      = "SMS_LAYOUT"
)

// Config holds application configuration
type Config struct {
	PlayersFile string // players file, one player per line
	StocksFile  string // stocks file, one stock per line
	LogLevel    string // debug, info, warn, error
	LogPretty   bool   // human-readable logs instead of JSON
	Layout      string // console menu layout
}

// Load reads configuration from environment variables, after loading the
// optional .env files.
func Load(envFiles ...string) *Config {
	// .env files are optional.
	_ = godotenv.Load(envFiles...)

	return &Config{
		PlayersFile: getEnv(EnvPlayersFile, "players.txt"),
		StocksFile:  getEnv(EnvStocksFile, "stocks.txt"),
		LogLevel:    getEnv(EnvLogLevel, "warn"),
		LogPretty:   getEnvAsBool(EnvLogPretty, true),
		Layout:      getEnv(EnvLayout, "classic"),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
