package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "tcx-pause-remover",
	Short: "Remove recording pauses from TCX activity files",
	Long: `tcx-pause-remover rewrites TCX activity files so that recording gaps
("pauses", e.g. when an indoor trainer session is stopped and resumed) are
removed from the timeline. Strava computes elapsed time as the wall-clock
span of the activity, so a paused ride shows up longer than it was; this
tool shifts every trackpoint after a pause back by the pause duration and
recomputes the total time.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
