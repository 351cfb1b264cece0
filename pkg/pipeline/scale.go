package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/matzehuels/pprep/pkg/files"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/units"
)

// ScaleImage resizes img according to opts.
func ScaleImage(img image.Image, opts *ScaleOptions) (*image.NRGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	w, h, mode := scaleTarget(img.Bounds(), opts)
	return imageops.Scale(img, w, h, imageops.ScaleOptions{
		Mode:        mode,
		Filter:      opts.Filter,
		Background:  opts.Background,
		Incremental: opts.Incremental,
	}), nil
}

// scaleTarget resolves the target pixel size and the effective mode.
func scaleTarget(b image.Rectangle, opts *ScaleOptions) (int, int, units.ScaleMode) {
	if opts.Scale != nil {
		w, h := opts.Scale.Apply(b.Dx(), b.Dy())
		return w, h, opts.Mode
	}
	w, h, complete := imageops.TargetSize(b.Dx(), b.Dy(), opts.Size.To(units.Px, opts.DPI))
	if !complete {
		return w, h, units.ScaleKeep
	}
	return w, h, opts.Mode
}

// Scale runs ScaleImage over inputs and writes one output per input.
func (r *Runner) Scale(ctx context.Context, inputs []string, opts ScaleOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	outputs, err := files.OutputPaths(opts.Output, inputs)
	if err != nil {
		return err
	}
	r.Logger.Debug("scale", "files", len(inputs), "size", opts.Size, "scale", opts.Scale, "mode", opts.Mode, "threads", r.threads())

	return r.batch(ctx, "scale", inputs, func(ctx context.Context, i int) error {
		start := time.Now()
		img, err := imageops.Open(inputs[i])
		if err != nil {
			return err
		}
		out, err := ScaleImage(img, &opts)
		if err != nil {
			return err
		}
		if err := imageops.Save(out, outputs[i], opts.Quality); err != nil {
			return err
		}
		r.Logger.Debug("scaled",
			"file", inputs[i],
			"output", outputs[i],
			"size", out.Bounds().Size(),
			"duration", time.Since(start).Round(time.Millisecond))
		return nil
	})
}
