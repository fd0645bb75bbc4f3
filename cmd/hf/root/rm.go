package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitflow/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <habit-id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Deleting an unknown id is a no-op by contract; report it
			// for the human anyway.
			found := false
			for _, h := range st.Habits() {
				if h.ID == args[0] {
					found = true
					break
				}
			}
			if err := st.DeleteHabit(ctx, args[0]); err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habit with that id; nothing removed."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" Habit removed.")
			return nil
		},
	}
	return cmd
}
