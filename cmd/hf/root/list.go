package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitflow/internal/stats"
	"habitflow/internal/ui"
)

func newListCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with their monthly progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			y, m := resolveMonth(year, month)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGrid, fmt.Sprintf("Habits — %s %d", m, y)))
			for _, h := range st.Habits() {
				s := stats.ForHabit(h, y, m)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-20s %s %3d%%  %s\n",
					h.Emoji, h.Name,
					ui.Bar(s.Percentage, 15), s.Percentage,
					ui.Muted.Render(fmt.Sprintf("%d/%d done · %d left · id %s", s.Completed, h.Goal, s.Left, h.ID)))
			}
			if len(st.Habits()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habits. Add one with: hf add <name>"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current)")

	return cmd
}

// resolveMonth fills unset month/year flags from the current date.
func resolveMonth(year, month int) (int, time.Month) {
	now := time.Now()
	y := year
	if y == 0 {
		y = now.Year()
	}
	m := now.Month()
	if month >= 1 && month <= 12 {
		m = time.Month(month)
	}
	return y, m
}
