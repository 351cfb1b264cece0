package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/matzehuels/pprep/pkg/files"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/units"
)

// PrepareImage lays img out on the print canvas and renders it.
func PrepareImage(img image.Image, opts *PrepareOptions) (*image.NRGBA, layout.Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, layout.Result{}, err
	}
	canvas, err := opts.Canvas()
	if err != nil {
		return nil, layout.Result{}, err
	}

	b := img.Bounds()
	res, err := layout.Solve(canvas, b.Dx(), b.Dy(), opts.Constraints.To(units.Px, opts.DPI), opts.NoRotation)
	if err != nil {
		return nil, layout.Result{}, err
	}
	if err := res.Validate(); err != nil {
		return nil, res, err
	}
	return imageops.Compose(img, res, opts.Style()), res, nil
}

// Prepare runs PrepareImage over inputs and writes one output per input.
func (r *Runner) Prepare(ctx context.Context, inputs []string, opts PrepareOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	outputs, err := files.OutputPaths(opts.Output, inputs)
	if err != nil {
		return err
	}
	canvas, err := opts.Canvas()
	if err != nil {
		return err
	}
	r.Logger.Debug("prepare", "files", len(inputs), "canvas", canvas, "dpi", opts.DPI, "threads", r.threads())

	return r.batch(ctx, "prepare", inputs, func(ctx context.Context, i int) error {
		start := time.Now()
		img, err := imageops.Open(inputs[i])
		if err != nil {
			return err
		}
		out, res, err := PrepareImage(img, &opts)
		if err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		if err := imageops.Save(out, outputs[i], opts.Quality); err != nil {
			return err
		}
		r.Logger.Debug("prepared",
			"file", inputs[i],
			"output", outputs[i],
			"photo", res.Photo,
			"rotated", res.Rotated,
			"duration", time.Since(start).Round(time.Millisecond))
		return nil
	})
}
