package worker

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyrantkhan/tcx-pause-remover/internal/config"
	"github.com/tyrantkhan/tcx-pause-remover/internal/tcx"
)

// Options configures one cleaning run.
type Options struct {
	InputPath  string
	OutputPath string
	Threshold  float64
	DryRun     bool
}

// OutputPathFor derives the default output path: the input filename stem
// plus the configured suffix and extension, in the same directory.
func OutputPathFor(inputPath string) string {
	defaults := config.Default()
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + defaults.OutputSuffix + defaults.OutputExt
}

// Run cleans a single TCX file: detect pauses, report them, and unless
// dry-run was requested, write the rewritten copy. The input file is
// never modified; nothing is written until the full replacement map and
// new duration have been computed.
func Run(opts Options) error {
	content, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.InputPath, err)
	}

	gaps, err := tcx.DetectGaps(string(content), opts.Threshold)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.InputPath, err)
	}

	if len(gaps) == 0 {
		printAlreadyClean(opts.InputPath)
		return nil
	}

	printGapReport(opts.InputPath, gaps)

	if opts.DryRun {
		printDryRun()
		return nil
	}

	result, err := tcx.Rewrite(string(content), gaps)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	if result.Skipped {
		slog.Debug("no timestamps after substitution, skipping write",
			"input", filepath.Base(opts.InputPath))
		return nil
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = OutputPathFor(opts.InputPath)
	}

	if err := os.WriteFile(outputPath, []byte(result.Content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	slog.Debug("rewrote timestamps",
		"input", filepath.Base(opts.InputPath),
		"replaced", result.Replaced,
		"gaps", len(gaps))

	printRunSummary(outputPath, result.Duration, totalGapSeconds(gaps))
	return nil
}

func totalGapSeconds(gaps []tcx.Gap) float64 {
	var total float64
	for _, gap := range gaps {
		total += gap.Seconds
	}
	return total
}
