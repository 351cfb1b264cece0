package units

import (
	"github.com/matzehuels/pprep/pkg/errors"
)

// DefaultDPI is the resolution used when the caller does not configure one.
const DefaultDPI = 300.0

// inchInMeters is the length of one inch in meters.
const inchInMeters = 0.0254

// Unit is a physical or device length unit.
type Unit int

// Supported units.
const (
	Px Unit = iota
	Mm
	Cm
	Inch
)

// MetersPerUnit returns the length of one unit in meters. Pixels depend on
// the resolution dpi; all other units ignore it.
func (u Unit) MetersPerUnit(dpi float64) float64 {
	switch u {
	case Mm:
		return 0.001
	case Cm:
		return 0.01
	case Inch:
		return inchInMeters
	default:
		return inchInMeters / dpi
	}
}

// NeedsDPI reports whether converting this unit to pixels requires a resolution.
func (u Unit) NeedsDPI() bool {
	return u != Px
}

// String returns the unit suffix used in the length grammar.
func (u Unit) String() string {
	switch u {
	case Mm:
		return "mm"
	case Cm:
		return "cm"
	case Inch:
		return "in"
	default:
		return "px"
	}
}

// ParseUnit parses a unit suffix (`px`, `mm`, `cm` or `in`).
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "px":
		return Px, nil
	case "mm":
		return Mm, nil
	case "cm":
		return Cm, nil
	case "in":
		return Inch, nil
	}
	return Px, errors.New(errors.ErrCodeInvalidUnit, "%q is not a valid length unit, must be one of (px|mm|cm|in)", s)
}
