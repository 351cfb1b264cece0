package units

import (
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
)

// placeholder marks an omitted dimension in the Size grammar.
const placeholder = "."

// Size is a width/height pair where one of the two may be omitted, to be
// inferred later from an aspect ratio. At least one dimension is present.
type Size struct {
	width, height       Length
	hasWidth, hasHeight bool
}

// NewSize creates a size from optional dimensions. A nil pointer omits that
// dimension; omitting both is an error.
func NewSize(width, height *Length) (Size, error) {
	if width == nil && height == nil {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "unable to create size, at least one of width or height must be given")
	}
	var s Size
	if width != nil {
		s.width, s.hasWidth = *width, true
	}
	if height != nil {
		s.height, s.hasHeight = *height, true
	}
	return s, nil
}

// Width returns the width and whether it is present.
func (s Size) Width() (Length, bool) { return s.width, s.hasWidth }

// Height returns the height and whether it is present.
func (s Size) Height() (Length, bool) { return s.height, s.hasHeight }

// IsComplete reports whether both dimensions are present.
func (s Size) IsComplete() bool { return s.hasWidth && s.hasHeight }

// Fix returns the size as a FixSize. Both dimensions must be present.
func (s Size) Fix() (FixSize, error) {
	if !s.IsComplete() {
		return FixSize{}, errors.New(errors.ErrCodeMissingDimension, "missing dimension in size %s, expects `width/height`", s)
	}
	return FixSize{width: s.width, height: s.height}, nil
}

// To converts the present dimensions to unit u at resolution dpi.
func (s Size) To(u Unit, dpi float64) Size {
	out := s
	if s.hasWidth {
		out.width = s.width.To(u, dpi)
	}
	if s.hasHeight {
		out.height = s.height.To(u, dpi)
	}
	return out
}

// Rotate90 swaps width and height.
func (s Size) Rotate90() Size {
	return Size{
		width:     s.height,
		height:    s.width,
		hasWidth:  s.hasHeight,
		hasHeight: s.hasWidth,
	}
}

// NeedsDPI reports whether any present dimension requires a resolution.
func (s Size) NeedsDPI() bool {
	return (s.hasWidth && s.width.NeedsDPI()) || (s.hasHeight && s.height.NeedsDPI())
}

// String formats the size as `width/height`, using `.` for omitted dimensions.
func (s Size) String() string {
	w, h := placeholder, placeholder
	if s.hasWidth {
		w = s.width.String()
	}
	if s.hasHeight {
		h = s.height.String()
	}
	return w + "/" + h
}

// ParseSize parses `width/height` where either side may be `.`.
func ParseSize(str string) (Size, error) {
	parts := strings.Split(str, "/")
	if len(parts) != 2 {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "unexpected size format in %q, expects `width/height`", str)
	}
	var dims [2]*Length
	for i, p := range parts {
		if strings.TrimSpace(p) == placeholder {
			continue
		}
		l, err := ParseLength(p)
		if err != nil {
			return Size{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "unable to parse size from %q", str)
		}
		dims[i] = &l
	}
	s, err := NewSize(dims[0], dims[1])
	if err != nil {
		return Size{}, errors.New(errors.ErrCodeInvalidSize, "unable to parse size from %q, at least one of width or height must be given", str)
	}
	return s, nil
}

// FixSize is a width/height pair with both dimensions present.
type FixSize struct {
	width, height Length
}

// NewFixSize creates a size from two lengths.
func NewFixSize(width, height Length) FixSize {
	return FixSize{width: width, height: height}
}

// PxSize creates a pixel size.
func PxSize(width, height int) FixSize {
	return FixSize{width: PxLength(width), height: PxLength(height)}
}

// Width returns the width.
func (s FixSize) Width() Length { return s.width }

// Height returns the height.
func (s FixSize) Height() Length { return s.height }

// To converts both dimensions to unit u at resolution dpi.
func (s FixSize) To(u Unit, dpi float64) FixSize {
	return FixSize{width: s.width.To(u, dpi), height: s.height.To(u, dpi)}
}

// Rotate90 swaps width and height.
func (s FixSize) Rotate90() FixSize {
	return FixSize{width: s.height, height: s.width}
}

// NeedsDPI reports whether either dimension requires a resolution.
func (s FixSize) NeedsDPI() bool {
	return s.width.NeedsDPI() || s.height.NeedsDPI()
}

// Size returns s as a (complete) Size.
func (s FixSize) Size() Size {
	return Size{width: s.width, height: s.height, hasWidth: true, hasHeight: true}
}

// String formats the size as `width/height`.
func (s FixSize) String() string {
	return s.width.String() + "/" + s.height.String()
}

// ParseFixSize parses `width/height` with both dimensions mandatory.
func ParseFixSize(str string) (FixSize, error) {
	parts := strings.Split(str, "/")
	if len(parts) != 2 {
		return FixSize{}, errors.New(errors.ErrCodeInvalidSize, "unexpected size format in %q, expects `width/height`", str)
	}
	var dims [2]Length
	for i, p := range parts {
		if strings.TrimSpace(p) == placeholder {
			return FixSize{}, errors.New(errors.ErrCodeMissingDimension, "missing dimension in %q, both width and height are required", str)
		}
		l, err := ParseLength(p)
		if err != nil {
			return FixSize{}, errors.Wrap(errors.ErrCodeInvalidSize, err, "unable to parse size from %q", str)
		}
		dims[i] = l
	}
	return FixSize{width: dims[0], height: dims[1]}, nil
}
