package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitflow/internal/stats"
	"habitflow/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate progress and trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			y, m := resolveMonth(year, month)
			habits := st.Habits()
			out := cmd.OutOrStdout()

			today := stats.Today(habits, time.Now())
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Today"))
			fmt.Fprintf(out, "%s %d%% — %d of %d habits done, %d left\n\n",
				ui.Bar(today.Percentage, 20), today.Percentage, today.Completed, today.Total, today.Left)

			monthly := stats.Monthly(habits, y, m)
			fmt.Fprintln(out, ui.Heading(ui.IconCal, fmt.Sprintf("%s %d", m, y)))
			fmt.Fprintf(out, "%s %d%% — %d of %d goal completions\n\n",
				ui.Bar(monthly.Percentage, 20), monthly.Percentage, monthly.Completed, monthly.Total)

			daily := stats.DailyTrend(habits, y, m)
			vals := make([]int, len(daily))
			for i, p := range daily {
				vals[i] = p.Percentage
			}
			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Daily trend (%d days)", len(daily))))
			fmt.Fprintln(out, ui.Good.Render(ui.Sparkline(vals)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Year to date"))
			for _, p := range stats.MonthlyTrend(habits, y, m) {
				fmt.Fprintf(out, "%s %s %3d%%\n", p.Month.String()[:3], ui.Bar(p.Percentage, 20), p.Percentage)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Top habits"))
			for i, r := range stats.TopHabits(habits, y, m, 5) {
				fmt.Fprintf(out, "%d. %s %-20s %3d%%\n", i+1, r.Habit.Emoji, r.Habit.Name, r.Stats.Percentage)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default current)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default current)")

	return cmd
}
