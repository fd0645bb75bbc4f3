package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitflow/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage quick and date-attached notes",
	}
	cmd.AddCommand(newNoteAddCmd(), newNoteListCmd(), newNoteRmCmd())
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a note (quick, or attached to a date via --date)",
		Args: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("note text is required")
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

			n, err := st.AddNote(ctx, strings.Join(args, " "), date)
			if err != nil {
				return err
			}
			if n.Quick() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Quick note saved — id %s\n", ui.IconNote, ui.Muted.Render(n.ID))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Note saved for %s — id %s\n", ui.IconPin, n.Date, ui.Muted.Render(n.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Attach to a date (YYYY-MM-DD)")

	return cmd
}

func newNoteListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notes := st.Notes()
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No notes."))
				return nil
			}
			for _, n := range notes {
				tag := ui.Muted.Render("quick")
				if !n.Quick() {
					tag = ui.Key.Render(n.Date)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s\n",
					tag, n.Text,
					ui.Dim.Render(n.CreatedAt.Format("2006-01-02 15:04")),
					ui.Muted.Render("id "+n.ID))
			}
			return nil
		},
	}
	return cmd
}

func newNoteRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, _, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.DeleteNote(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" Note removed (if it existed).")
			return nil
		},
	}
	return cmd
}
