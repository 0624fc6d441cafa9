// Package commands implements the registrar CLI commands. All behavior
// lives in the internal packages; commands only wire config, store, and
// output together.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/registrar/internal/config"
	"github.com/leapstack-labs/registrar/internal/store"
)

var cfg *config.Config

// SetConfig stores the loaded configuration for command use. Called by
// the root command's PersistentPreRunE.
func SetConfig(c *config.Config) {
	cfg = c
}

func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{Database: "registrar.db", LogLevel: "info"}
	}
	return cfg
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// openStore opens the configured database and brings the schema up to
// date. The caller owns the returned store and must close it.
func openStore() (*store.Store, *slog.Logger, error) {
	c := getConfig()
	logger := newLogger(c.LogLevel)

	st := store.New(logger)
	if err := st.Open(c.Database); err != nil {
		return nil, nil, err
	}
	if err := st.Migrate(); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return st, logger, nil
}
