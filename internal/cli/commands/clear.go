package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/registrar/internal/fixture"
)

// NewClearCommand creates the clear command.
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all rows from the store",
		Long: `Delete every row from every table in reverse dependency order within
a single transaction. On failure the store is left unchanged.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, logger, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			gen := fixture.New(st, fixture.WithLogger(logger))
			if err := gen.ClearAll(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Store cleared.")
			return nil
		},
	}
}
