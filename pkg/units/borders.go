package units

import (
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Borders holds one length per side of a rectangle, used for padding,
// margins and border strokes.
type Borders struct {
	top, right, bottom, left Length
}

// NewBorders creates borders from explicit sides in clockwise order.
func NewBorders(top, right, bottom, left Length) Borders {
	return Borders{top: top, right: right, bottom: bottom, left: left}
}

// BordersAll creates borders with the same length on every side.
func BordersAll(l Length) Borders {
	return Borders{top: l, right: l, bottom: l, left: l}
}

// PxBorders creates pixel borders in clockwise order.
func PxBorders(top, right, bottom, left int) Borders {
	return Borders{
		top:    PxLength(top),
		right:  PxLength(right),
		bottom: PxLength(bottom),
		left:   PxLength(left),
	}
}

// Top returns the top side.
func (b Borders) Top() Length { return b.top }

// Right returns the right side.
func (b Borders) Right() Length { return b.right }

// Bottom returns the bottom side.
func (b Borders) Bottom() Length { return b.bottom }

// Left returns the left side.
func (b Borders) Left() Length { return b.left }

// Horizontal returns left+right as a rounded integer; meaningful for pixel borders.
func (b Borders) Horizontal() int { return b.left.Int() + b.right.Int() }

// Vertical returns top+bottom as a rounded integer; meaningful for pixel borders.
func (b Borders) Vertical() int { return b.top.Int() + b.bottom.Int() }

// To converts all sides to unit u at resolution dpi.
func (b Borders) To(u Unit, dpi float64) Borders {
	return Borders{
		top:    b.top.To(u, dpi),
		right:  b.right.To(u, dpi),
		bottom: b.bottom.To(u, dpi),
		left:   b.left.To(u, dpi),
	}
}

// Rotate90 rotates the borders by 90° clockwise: the old left side becomes
// the top, the old top the right, and so on.
func (b Borders) Rotate90() Borders {
	return Borders{top: b.left, right: b.top, bottom: b.right, left: b.bottom}
}

// NeedsDPI reports whether any side requires a resolution.
func (b Borders) NeedsDPI() bool {
	return b.top.NeedsDPI() || b.right.NeedsDPI() || b.bottom.NeedsDPI() || b.left.NeedsDPI()
}

// String formats all four sides as `top/right/bottom/left`.
func (b Borders) String() string {
	return b.top.String() + "/" + b.right.String() + "/" + b.bottom.String() + "/" + b.left.String()
}

// ParseBorders parses `all`, `top-bottom/right-left` or `top/right/bottom/left`.
func ParseBorders(s string) (Borders, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1, 2, 4:
	default:
		return Borders{}, errors.New(errors.ErrCodeInvalidBorders,
			"unexpected borders format in %q, expects `<all>`, `<top-bottom>/<right-left>` or `<top>/<right>/<bottom>/<left>`", s)
	}

	sides := make([]Length, len(parts))
	for i, p := range parts {
		l, err := ParseLength(p)
		if err != nil {
			return Borders{}, errors.Wrap(errors.ErrCodeInvalidBorders, err, "unable to parse borders from %q", s)
		}
		sides[i] = l
	}

	switch len(sides) {
	case 1:
		return BordersAll(sides[0]), nil
	case 2:
		return NewBorders(sides[0], sides[1], sides[0], sides[1]), nil
	default:
		return NewBorders(sides[0], sides[1], sides[2], sides[3]), nil
	}
}
