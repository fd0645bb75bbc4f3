package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitflow/internal/store"
	"habitflow/internal/ui"
)

func newAddCmd() *cobra.Command {
	var emoji string
	var goal int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("habit name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := st.AddHabit(ctx, strings.Join(args, " "), emoji, goal)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s (goal %d/month) — id %s\n",
				ui.IconSparkle, h.Emoji, ui.Key.Render(h.Name), h.Goal, ui.Muted.Render(h.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&emoji, "emoji", "e", "🎯", "Display emoji")
	cmd.Flags().IntVarP(&goal, "goal", "g", store.DefaultGoal, "Monthly goal (completions per month)")

	return cmd
}
