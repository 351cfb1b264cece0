package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Length is a value tagged with a unit. Pixel lengths always hold an
// integral value.
type Length struct {
	value float64
	unit  Unit
}

// NewLength creates a length, rounding pixel values to the nearest integer.
func NewLength(value float64, unit Unit) Length {
	if unit == Px {
		value = math.Round(value)
	}
	return Length{value: value, unit: unit}
}

// PxLength creates a pixel length.
func PxLength(v int) Length { return Length{value: float64(v), unit: Px} }

// MmLength creates a length in millimeters.
func MmLength(v float64) Length { return Length{value: v, unit: Mm} }

// CmLength creates a length in centimeters.
func CmLength(v float64) Length { return Length{value: v, unit: Cm} }

// InchLength creates a length in inches.
func InchLength(v float64) Length { return Length{value: v, unit: Inch} }

// Value returns the numeric value in the length's own unit.
func (l Length) Value() float64 { return l.value }

// Unit returns the length's unit.
func (l Length) Unit() Unit { return l.unit }

// Int returns the value rounded to the nearest integer. For pixel lengths
// this is exact.
func (l Length) Int() int { return int(math.Round(l.value)) }

// NeedsDPI reports whether converting l to pixels requires a resolution.
func (l Length) NeedsDPI() bool { return l.unit.NeedsDPI() }

// To converts l to unit u at resolution dpi. Converting to the length's own
// unit returns l unchanged. Results in pixels are rounded at this point.
func (l Length) To(u Unit, dpi float64) Length {
	if l.unit == u {
		return l
	}
	meters := l.value * l.unit.MetersPerUnit(dpi)
	return NewLength(meters/u.MetersPerUnit(dpi), u)
}

// ToPx converts l to pixels at resolution dpi.
func (l Length) ToPx(dpi float64) Length {
	return l.To(Px, dpi)
}

// String formats the length as it would be parsed, e.g. "5cm" or "1024px".
func (l Length) String() string {
	return strconv.FormatFloat(l.value, 'f', -1, 64) + l.unit.String()
}

// ParseLength parses a number followed by an optional unit suffix.
// The suffix is the trailing run of letters; without one the unit is px.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	split := len(s)
	for split > 0 && isLetter(s[split-1]) {
		split--
	}
	num, suffix := s[:split], s[split:]

	unit := Px
	if suffix != "" {
		u, err := ParseUnit(suffix)
		if err != nil {
			return Length{}, errors.Wrap(errors.ErrCodeInvalidLength, err, "invalid length %q, expects `<number>[px|mm|cm|in]`", s)
		}
		unit = u
	}

	if num == "" {
		return Length{}, errors.New(errors.ErrCodeInvalidLength, "invalid length %q, missing number", s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Length{}, errors.Wrap(errors.ErrCodeInvalidLength, err, "invalid length %q, expects `<number>[px|mm|cm|in]`", s)
	}
	return NewLength(v, unit), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
