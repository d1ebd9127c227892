package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tyrantkhan/tcx-pause-remover/internal/config"
	"github.com/tyrantkhan/tcx-pause-remover/internal/worker"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <input-file> [input-file...]",
	Short: "Detect pauses in TCX files and write cleaned copies",
	Long: `Detect recording pauses in one or more TCX activity files and write a
cleaned copy of each with the pause time removed. The input files are never
modified; output defaults to <input>_no_pauses.tcx next to the input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClean,
}

var (
	output        string
	threshold     float64
	dryRun        bool
	maxConcurrent int
)

func init() {
	defaults := config.Default()

	cleanCmd.Flags().StringVarP(&output, "output", "o", "", "output TCX path (default: <input>_no_pauses.tcx)")
	cleanCmd.Flags().Float64VarP(&threshold, "threshold", "t", defaults.GapThreshold, "minimum pause duration in seconds to detect")
	cleanCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "detect pauses but don't write output")
	cleanCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", defaults.MaxConcurrent, "max files processed in parallel")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if output != "" && len(args) > 1 {
		return fmt.Errorf("--output is only valid with a single input file")
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		absPath, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		inputs = append(inputs, absPath)
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		OutputPath: output,
		Threshold:  threshold,
		DryRun:     dryRun,
	}

	if err := worker.RunAll(ctx, inputs, maxConcurrent, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}
