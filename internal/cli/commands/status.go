package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/registrar/internal/store"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show row counts and seed history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ctx := cmd.Context()

			rows := make([][]string, 0)
			for _, table := range store.Tables() {
				n, err := st.CountRows(ctx, table)
				if err != nil {
					return err
				}
				rows = append(rows, []string{table, fmt.Sprintf("%d", n)})
			}
			renderTable(cmd.OutOrStdout(), []string{"Table", "Rows"}, rows)

			batches, err := st.SeedBatches(ctx)
			if err != nil {
				return err
			}
			if len(batches) == 0 {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout())
			batchRows := make([][]string, 0, len(batches))
			for _, b := range batches {
				batchRows = append(batchRows, []string{
					b.Entity,
					fmt.Sprintf("%d", b.Requested),
					fmt.Sprintf("%d", b.Created),
					b.FinishedAt.Format("2006-01-02 15:04:05"),
				})
			}
			renderTable(cmd.OutOrStdout(), []string{"Seed Step", "Requested", "Created", "Finished"}, batchRows)
			return nil
		},
	}
}
