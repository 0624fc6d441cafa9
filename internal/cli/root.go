// Package cli provides the command-line interface for registrar.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/registrar/internal/cli/commands"
	"github.com/leapstack-labs/registrar/internal/config"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "registrar",
		Short: "Registrar - academic records data layer",
		Long: `Registrar manages an academic records store: departments, programs,
people, courses, enrollments, research, and committees.

It can seed the store with internally consistent synthetic data and run
a fixed catalog of analytical queries against it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			commands.SetConfig(cfg)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./registrar.yaml)")
	rootCmd.PersistentFlags().String("database", "", "path to the SQLite database (\":memory:\" for in-memory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		commands.NewSeedCommand(),
		commands.NewClearCommand(),
		commands.NewStatusCommand(),
		commands.NewQueryCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
