package root

import (
	"context"

	"github.com/spf13/cobra"

	"habitflow/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"board"},
		Short:   "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, kv, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(ctx, st, kv, cmd.OutOrStdout())
		},
	}
	return cmd
}
