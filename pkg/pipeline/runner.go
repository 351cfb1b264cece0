package pipeline

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pprep/pkg/observability"
)

// Runner processes batches of files in parallel.
//
// Each file is handled by one goroutine, with at most Threads in flight.
// Cancellation is checked between files; a file that has started is finished.
// The first error stops the batch.
type Runner struct {
	Threads int
	Logger  *log.Logger

	// OnProgress is called after each finished file with the number of
	// finished files so far. Calls are serialized.
	OnProgress func(done, total int, file string)

	mu sync.Mutex
}

// NewRunner creates a runner. Zero threads means one per CPU; a nil logger
// discards output.
func NewRunner(threads int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Threads: threads, Logger: logger}
}

func (r *Runner) threads() int {
	if r.Threads > 0 {
		return r.Threads
	}
	return runtime.NumCPU()
}

// Run calls fn with the index of each input. Errors are prefixed with the
// input path.
func (r *Runner) Run(ctx context.Context, inputs []string, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.threads())

	total := len(inputs)
	done := 0
	for i, file := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(gctx, i); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			r.mu.Lock()
			defer r.mu.Unlock()
			done++
			if r.OnProgress != nil {
				r.OnProgress(done, total, file)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// batch runs fn over inputs like Run and reports the operation op to the
// registered pipeline hooks.
func (r *Runner) batch(ctx context.Context, op string, inputs []string, fn func(ctx context.Context, i int) error) error {
	hooks := observability.Pipeline()
	hooks.OnBatchStart(ctx, op, len(inputs))
	start := time.Now()

	err := r.Run(ctx, inputs, func(ctx context.Context, i int) error {
		t := time.Now()
		err := fn(ctx, i)
		hooks.OnImageComplete(ctx, op, inputs[i], time.Since(t), err)
		return err
	})

	hooks.OnBatchComplete(ctx, op, len(inputs), time.Since(start), err)
	return err
}
