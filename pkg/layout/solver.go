package layout

import (
	"image"
	"math"
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
	"github.com/matzehuels/pprep/pkg/units"
)

// Option names as accepted on the command line.
const (
	OptImageSize  = "image-size"
	OptFramedSize = "framed-size"
	OptPadding    = "padding"
	OptMargins    = "margins"
)

// Constraints are the user supplied layout quantities. Exactly one of
// ImageSize and FramedSize and exactly one of Padding and Margins must be set,
// and FramedSize may not be combined with Margins.
type Constraints struct {
	ImageSize  *units.FixSize
	FramedSize *units.FixSize
	Padding    *units.Borders
	Margins    *units.Borders
}

// Validate checks the constraint arity.
func (c Constraints) Validate() error {
	sizes := count(c.ImageSize != nil, c.FramedSize != nil)
	borders := count(c.Padding != nil, c.Margins != nil)
	if sizes != 1 || borders != 1 || (c.FramedSize != nil && c.Margins != nil) {
		return errors.New(errors.ErrCodeOverdeterminedLayout,
			"over- or under-determined print format (given: %s), requires exactly one of (%s|%s) and one of (%s|%s), but not %s with %s",
			c.given(), OptImageSize, OptFramedSize, OptPadding, OptMargins, OptFramedSize, OptMargins)
	}
	return nil
}

func (c Constraints) given() string {
	var names []string
	if c.ImageSize != nil {
		names = append(names, OptImageSize)
	}
	if c.FramedSize != nil {
		names = append(names, OptFramedSize)
	}
	if c.Padding != nil {
		names = append(names, OptPadding)
	}
	if c.Margins != nil {
		names = append(names, OptMargins)
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// To converts all present constraints to unit u at resolution dpi.
func (c Constraints) To(u units.Unit, dpi float64) Constraints {
	var out Constraints
	if c.ImageSize != nil {
		s := c.ImageSize.To(u, dpi)
		out.ImageSize = &s
	}
	if c.FramedSize != nil {
		s := c.FramedSize.To(u, dpi)
		out.FramedSize = &s
	}
	if c.Padding != nil {
		b := c.Padding.To(u, dpi)
		out.Padding = &b
	}
	if c.Margins != nil {
		b := c.Margins.To(u, dpi)
		out.Margins = &b
	}
	return out
}

// Rotate90 rotates all present constraints by 90°.
func (c Constraints) Rotate90() Constraints {
	var out Constraints
	if c.ImageSize != nil {
		s := c.ImageSize.Rotate90()
		out.ImageSize = &s
	}
	if c.FramedSize != nil {
		s := c.FramedSize.Rotate90()
		out.FramedSize = &s
	}
	if c.Padding != nil {
		b := c.Padding.Rotate90()
		out.Padding = &b
	}
	if c.Margins != nil {
		b := c.Margins.Rotate90()
		out.Margins = &b
	}
	return out
}

// NeedsDPI reports whether any present constraint is not yet in pixels.
func (c Constraints) NeedsDPI() bool {
	return (c.ImageSize != nil && c.ImageSize.NeedsDPI()) ||
		(c.FramedSize != nil && c.FramedSize.NeedsDPI()) ||
		(c.Padding != nil && c.Padding.NeedsDPI()) ||
		(c.Margins != nil && c.Margins.NeedsDPI())
}

// Result is a solved layout. All values are in pixels and in the orientation
// of Canvas, which is rotated relative to the requested format if Rotated.
type Result struct {
	Canvas  units.FixSize
	Photo   units.FixSize
	Framed  units.FixSize
	Padding units.Borders
	Margins units.Borders
	Rotated bool
}

// Validate rejects layouts that cannot be rendered: an empty photo or frame,
// or negative padding or margins.
func (r Result) Validate() error {
	if r.Photo.Width().Int() <= 0 || r.Photo.Height().Int() <= 0 {
		return errors.New(errors.ErrCodeDegenerateLayout, "photo size %s is empty", r.Photo)
	}
	if r.Framed.Width().Int() <= 0 || r.Framed.Height().Int() <= 0 {
		return errors.New(errors.ErrCodeDegenerateLayout, "framed size %s is empty", r.Framed)
	}
	if negative(r.Padding) {
		return errors.New(errors.ErrCodeDegenerateLayout, "padding %s is negative, the photo does not fit", r.Padding)
	}
	if negative(r.Margins) {
		return errors.New(errors.ErrCodeDegenerateLayout, "margins %s are negative, the framed photo does not fit on the canvas", r.Margins)
	}
	return nil
}

// FramedRect returns the framed rectangle in canvas coordinates.
func (r Result) FramedRect() image.Rectangle {
	x, y := r.Margins.Left().Int(), r.Margins.Top().Int()
	return image.Rect(x, y, x+r.Framed.Width().Int(), y+r.Framed.Height().Int())
}

// PhotoRect returns the photo rectangle in canvas coordinates.
func (r Result) PhotoRect() image.Rectangle {
	x := r.Margins.Left().Int() + r.Padding.Left().Int()
	y := r.Margins.Top().Int() + r.Padding.Top().Int()
	return image.Rect(x, y, x+r.Photo.Width().Int(), y+r.Photo.Height().Int())
}

// Solve computes the layout of a photo of imgW x imgH pixels on canvas.
// Unless noRotation is set, the canvas is turned by 90° when its orientation
// differs from the photo's. The canvas and all constraints must be in pixels.
func Solve(canvas units.FixSize, imgW, imgH int, c Constraints, noRotation bool) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if canvas.NeedsDPI() || c.NeedsDPI() {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "layout inputs must be converted to pixels first (canvas %s)", canvas)
	}

	cw, ch := canvas.Width().Int(), canvas.Height().Int()
	rotated := !noRotation && (imgH > imgW) != (ch > cw)
	if rotated {
		cw, ch = ch, cw
		c = c.Rotate90()
	}

	// Upper bound of photo plus padding.
	var framedW, framedH int
	switch {
	case c.FramedSize != nil:
		framedW, framedH = c.FramedSize.Width().Int(), c.FramedSize.Height().Int()
	case c.Margins != nil:
		framedW, framedH = cw-c.Margins.Horizontal(), ch-c.Margins.Vertical()
	default:
		framedW = c.ImageSize.Width().Int() + c.Padding.Horizontal()
		framedH = c.ImageSize.Height().Int() + c.Padding.Vertical()
	}

	// Upper bound of the photo alone.
	var maxW, maxH int
	if c.ImageSize != nil {
		maxW, maxH = c.ImageSize.Width().Int(), c.ImageSize.Height().Int()
	} else {
		maxW, maxH = framedW-c.Padding.Horizontal(), framedH-c.Padding.Vertical()
	}

	var padding units.Borders
	if c.Padding != nil {
		padding = *c.Padding
	} else {
		top, bottom := Split(framedH - maxH)
		left, right := Split(framedW - maxW)
		padding = units.PxBorders(top, right, bottom, left)
	}

	photoW, photoH := Fit(imgW, imgH, maxW, maxH)
	framedW = photoW + padding.Horizontal()
	framedH = photoH + padding.Vertical()

	var top, right, bottom, left int
	if c.Margins != nil {
		top, bottom = SplitSkewed(ch-framedH, c.Margins.Top().Int(), c.Margins.Bottom().Int())
		left, right = SplitSkewed(cw-framedW, c.Margins.Left().Int(), c.Margins.Right().Int())
	} else {
		top, bottom = Split(ch - framedH)
		left, right = Split(cw - framedW)
	}

	return Result{
		Canvas:  units.PxSize(cw, ch),
		Photo:   units.PxSize(photoW, photoH),
		Framed:  units.PxSize(framedW, framedH),
		Padding: padding,
		Margins: units.PxBorders(top, right, bottom, left),
		Rotated: rotated,
	}, nil
}

// Fit returns the largest size with the aspect ratio of srcW x srcH that fits
// into boxW x boxH. The result touches the box on at least one axis.
func Fit(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}
	// Compare srcW/srcH with boxW/boxH without division.
	if int64(srcW)*int64(boxH) >= int64(srcH)*int64(boxW) {
		return boxW, int(math.Round(float64(boxW) * float64(srcH) / float64(srcW)))
	}
	return int(math.Round(float64(boxH) * float64(srcW) / float64(srcH))), boxH
}

// Split divides total over a leading and a trailing side. An odd pixel goes
// to the leading side.
func Split(total int) (lead, trail int) {
	lead = int(math.Round(float64(total) / 2))
	return lead, total - lead
}

// SplitSkewed divides total over two sides, keeping the difference between
// the requested sides reqLead and reqTrail.
func SplitSkewed(total, reqLead, reqTrail int) (lead, trail int) {
	lead = int(math.Round(float64(total+reqLead-reqTrail) / 2))
	return lead, total - lead
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func negative(b units.Borders) bool {
	return b.Top().Int() < 0 || b.Right().Int() < 0 || b.Bottom().Int() < 0 || b.Left().Int() < 0
}
