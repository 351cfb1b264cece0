package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Scale is a relative width/height multiplier.
type Scale struct {
	width, height float64
}

// NewScale creates a scale. Both factors must be positive.
func NewScale(width, height float64) (Scale, error) {
	if !(width > 0) || !(height > 0) {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "scale factors must be positive, got %g/%g", width, height)
	}
	return Scale{width: width, height: height}, nil
}

// Width returns the horizontal factor.
func (s Scale) Width() float64 { return s.width }

// Height returns the vertical factor.
func (s Scale) Height() float64 { return s.height }

// Apply scales a pixel size, rounding to the nearest pixel.
func (s Scale) Apply(width, height int) (int, int) {
	return int(math.Round(float64(width) * s.width)), int(math.Round(float64(height) * s.height))
}

// String formats the scale as `width/height` fractions.
func (s Scale) String() string {
	return strconv.FormatFloat(s.width, 'f', -1, 64) + "/" + strconv.FormatFloat(s.height, 'f', -1, 64)
}

// ParseScale parses `scale` or `width/height` where each factor is a fraction
// (`0.5`) or a percentage (`50%`), and either side of a pair may be `.`.
// A single factor applies to both axes.
func ParseScale(s string) (Scale, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "unexpected scale format in %q, expects `width/height` or `scale`", s)
	}

	factors := make([]float64, 0, 2)
	present := make([]bool, 0, 2)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == placeholder {
			factors = append(factors, 0)
			present = append(present, false)
			continue
		}
		f, err := parseFactor(p)
		if err != nil {
			return Scale{}, errors.Wrap(errors.ErrCodeInvalidScale, err, "unable to parse scale from %q", s)
		}
		factors = append(factors, f)
		present = append(present, true)
	}

	w, h := factors[0], factors[0]
	hasW, hasH := present[0], present[0]
	if len(factors) == 2 {
		h, hasH = factors[1], present[1]
	}
	switch {
	case !hasW && !hasH:
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "unable to parse scale from %q, at least one of width or height must be given", s)
	case !hasW:
		w = h
	case !hasH:
		h = w
	}
	return NewScale(w, h)
}

func parseFactor(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ScaleMode selects how an image is fitted into a target size.
type ScaleMode int

// Scale modes.
const (
	// ScaleKeep keeps the aspect ratio; the result may be smaller than the
	// target in one dimension.
	ScaleKeep ScaleMode = iota
	// ScaleFill keeps the aspect ratio and fills the remaining space with a
	// background color, so the result has exactly the target size.
	ScaleFill
	// ScaleCrop keeps the aspect ratio and crops surplus image space.
	ScaleCrop
	// ScaleStretch changes the aspect ratio to match the target exactly.
	ScaleStretch
)

// String returns the mode name as accepted by ParseScaleMode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleFill:
		return "fill"
	case ScaleCrop:
		return "crop"
	case ScaleStretch:
		return "stretch"
	default:
		return "keep"
	}
}

// ParseScaleMode parses `keep`, `fill`, `crop` or `stretch`.
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "keep":
		return ScaleKeep, nil
	case "fill":
		return ScaleFill, nil
	case "crop":
		return ScaleCrop, nil
	case "stretch":
		return ScaleStretch, nil
	}
	return ScaleKeep, errors.New(errors.ErrCodeInvalidScale, "%q is not a valid scale mode, must be one of (keep|fill|crop|stretch)", s)
}
