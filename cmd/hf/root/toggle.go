package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitflow/internal/dateutil"
	"habitflow/internal/ui"
)

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <habit-id> [date]",
		Short: "Toggle a habit's completion for a date (default today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := dateutil.TodayKey()
			if len(args) == 2 {
				parsed, err := time.Parse(dateutil.KeyLayout, dateutil.NormalizeKey(args[1]))
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", args[1], err)
				}
				key = dateutil.KeyFromTime(parsed)
			}

			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.ToggleCompletion(ctx, args[0], key); err != nil {
				return err
			}
			for _, h := range st.Habits() {
				if h.ID != args[0] {
					continue
				}
				state := ui.Muted.Render("not done")
				if h.Done(key) {
					state = ui.Good.Render("done")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s: %s\n", h.Emoji, ui.Key.Render(h.Name), key, state)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habit with that id; nothing toggled."))
			return nil
		},
	}
	return cmd
}
