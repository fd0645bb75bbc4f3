package root

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"habitflow/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hf",
	Short:         "habitflow — local-first habit tracking dashboard",
	Long:          "habitflow tracks daily habits against monthly goals, with notes and progress trends, all stored in a local database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newRmCmd(),
		newToggleCmd(),
		newListCmd(),
		newStatsCmd(),
		newNoteCmd(),
		newDashboardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
