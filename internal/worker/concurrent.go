package worker

import (
	"context"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// RunAll cleans multiple files with bounded parallelism. The explicit
// output path in opts only applies to a single input; with several inputs
// each file gets the default derived output path.
func RunAll(ctx context.Context, inputs []string, maxConcurrent int, opts Options) error {
	if len(inputs) == 1 {
		opts.InputPath = inputs[0]
		return Run(opts)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for _, input := range inputs {
		input := input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			slog.Debug("processing file", "input", filepath.Base(input))

			fileOpts := opts
			fileOpts.InputPath = input
			fileOpts.OutputPath = ""
			return Run(fileOpts)
		})
	}

	return g.Wait()
}
