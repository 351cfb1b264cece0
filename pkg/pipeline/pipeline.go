// Package pipeline runs pprep's image operations over batches of files.
//
// This package holds the option types, validation and per-image processing
// shared by every entry point, so the CLI and job files behave identically.
//
// # Operations
//
//   - Prepare: lay a photo out on a print canvas (format, margins, padding,
//     border, cut marks) and render it
//   - Scale: resize a photo to an absolute size or by a relative factor
//   - Metadata: read pixel size and an EXIF summary, through a cache
//
// # Usage
//
//	runner := pipeline.NewRunner(0, logger)
//	opts := pipeline.NewPrepareOptions()
//	opts.Output = "prints/*.jpg"
//	opts.Format, _ = units.ParseSize("15cm/10cm")
//	size, _ := units.ParseFixSize("12cm/8cm")
//	pad, _ := units.ParseBorders("5mm")
//	opts.Constraints = layout.Constraints{ImageSize: &size, Padding: &pad}
//	err := runner.Prepare(ctx, files, opts)
//
// Options are validated once, before any file is read.
package pipeline

import (
	"github.com/matzehuels/pprep/pkg/errors"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/units"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultDPI is the resolution used to convert physical lengths to pixels.
	DefaultDPI = units.DefaultDPI

	// DefaultQuality is the JPEG output quality in percent.
	DefaultQuality = imageops.DefaultQuality
)

// =============================================================================
// Prepare Options
// =============================================================================

// PrepareOptions configure the prepare operation. Lengths may use any unit;
// they are converted to pixels at DPI.
type PrepareOptions struct {
	// Output is the output path template, `*` is replaced by the input name.
	Output string

	// Format is the nominal print size, e.g. 15cm/10cm. Both dimensions are
	// required. Known metric formats are replaced by their exact inch size.
	Format units.Size

	// ExactFormat disables the print format table.
	ExactFormat bool

	DPI         float64
	Constraints layout.Constraints
	NoRotation  bool

	Background units.Color
	PadColor   *units.Color

	Border      *units.Borders
	BorderColor units.Color

	CutMarks       *units.Length
	CutMarksOffset *units.Length
	CutMarksColor  units.Color

	Filter  imageops.Filter
	Quality int

	// validated tracks whether Validate has succeeded.
	validated bool
}

// NewPrepareOptions returns options with the default resolution, quality,
// filter and colors.
func NewPrepareOptions() PrepareOptions {
	return PrepareOptions{
		DPI:           DefaultDPI,
		Background:    units.White,
		BorderColor:   units.Black,
		CutMarksColor: units.Black,
		Filter:        imageops.DefaultFilter,
		Quality:       DefaultQuality,
	}
}

// SetDefaults fills unset numeric options.
func (o *PrepareOptions) SetDefaults() {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
}

// Validate applies defaults and checks all options. It is idempotent.
func (o *PrepareOptions) Validate() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errors.ValidateOutputTemplate(o.Output); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}
	if err := errors.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if !o.Format.IsComplete() {
		return errors.New(errors.ErrCodeMissingDimension, "missing dimension in print format %s, expects `width/height`", o.Format)
	}
	if err := o.Constraints.Validate(); err != nil {
		return err
	}
	canvas, err := o.Canvas()
	if err != nil {
		return err
	}
	if canvas.Width().Int() <= 0 || canvas.Height().Int() <= 0 {
		return errors.New(errors.ErrCodeInvalidSize, "print format %s is empty at %g dpi", o.Format, o.DPI)
	}

	o.validated = true
	return nil
}

// Canvas returns the print canvas in pixels.
func (o *PrepareOptions) Canvas() (units.FixSize, error) {
	format := o.Format
	if !o.ExactFormat {
		var err error
		if format, err = units.ToPrintFormat(format); err != nil {
			return units.FixSize{}, err
		}
	}
	fix, err := format.Fix()
	if err != nil {
		return units.FixSize{}, err
	}
	return fix.To(units.Px, o.DPI), nil
}

// Style returns the drawing parameters in pixels.
func (o *PrepareOptions) Style() imageops.Style {
	s := imageops.Style{
		Background:    o.Background,
		PadColor:      o.PadColor,
		Filter:        o.Filter,
		BorderColor:   o.BorderColor,
		CutMarksColor: o.CutMarksColor,
	}
	if o.Border != nil {
		s.Border = o.Border.To(units.Px, o.DPI)
	} else {
		s.Border = units.PxBorders(0, 0, 0, 0)
	}
	if o.CutMarks != nil {
		s.CutMarks = o.CutMarks.ToPx(o.DPI).Int()
	}
	if o.CutMarksOffset != nil {
		s.CutMarksOffset = o.CutMarksOffset.ToPx(o.DPI).Int()
	}
	return s
}

// =============================================================================
// Scale Options
// =============================================================================

// ScaleOptions configure the scale operation. Exactly one of Size and Scale
// must be set.
type ScaleOptions struct {
	Output string

	Size  *units.Size
	Scale *units.Scale

	// Mode applies to Scale and to a Size with both dimensions. A Size with
	// a missing dimension always keeps the aspect ratio.
	Mode        units.ScaleMode
	Filter      imageops.Filter
	Incremental bool
	DPI         float64
	Background  units.Color
	Quality     int

	validated bool
}

// NewScaleOptions returns options with the default resolution, quality,
// filter and background.
func NewScaleOptions() ScaleOptions {
	return ScaleOptions{
		DPI:        DefaultDPI,
		Background: units.White,
		Filter:     imageops.DefaultFilter,
		Quality:    DefaultQuality,
	}
}

// SetDefaults fills unset numeric options.
func (o *ScaleOptions) SetDefaults() {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
}

// Validate applies defaults and checks all options. It is idempotent.
func (o *ScaleOptions) Validate() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if (o.Size == nil) == (o.Scale == nil) {
		return errors.New(errors.ErrCodeInvalidInput, "exactly one of `--size` and `--scale` must be given")
	}
	if err := errors.ValidateOutputTemplate(o.Output); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}
	if err := errors.ValidateQuality(o.Quality); err != nil {
		return err
	}
	if o.Size != nil {
		px := o.Size.To(units.Px, o.DPI)
		if w, ok := px.Width(); ok && w.Int() <= 0 {
			return errors.New(errors.ErrCodeInvalidSize, "target width in %s must be positive", o.Size)
		}
		if h, ok := px.Height(); ok && h.Int() <= 0 {
			return errors.New(errors.ErrCodeInvalidSize, "target height in %s must be positive", o.Size)
		}
	}

	o.validated = true
	return nil
}
