package units

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Color is an 8-bit RGBA color (non-premultiplied).
type Color struct {
	R, G, B, A uint8
}

// White is the default background color.
var White = Color{255, 255, 255, 255}

// Black is the default border and cut mark color.
var Black = Color{0, 0, 0, 255}

// NRGBA returns c as a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats the color as `r/g/b/a`.
func (c Color) String() string {
	return fmt.Sprintf("%d/%d/%d/%d", c.R, c.G, c.B, c.A)
}

// ParseColor parses a color name, a gray level (`128`), `r/g/b` or `r/g/b/a`.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	parts := strings.Split(s, "/")
	ch := make([]uint8, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "unable to parse color from %q, expects a color name, `gray`, `r/g/b` or `r/g/b/a`", s)
		}
		ch[i] = uint8(v)
	}
	switch len(ch) {
	case 1:
		return Color{ch[0], ch[0], ch[0], 255}, nil
	case 3:
		return Color{ch[0], ch[1], ch[2], 255}, nil
	case 4:
		return Color{ch[0], ch[1], ch[2], ch[3]}, nil
	}
	return Color{}, errors.New(errors.ErrCodeInvalidColor, "can't parse color from %q, requires 1, 3 or 4 elements", s)
}

// namedColors holds the CSS basic and common extended color keywords.
var namedColors = map[string]Color{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"transparent": {0, 0, 0, 0},
	"silver":      {192, 192, 192, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"darkgray":    {169, 169, 169, 255},
	"darkgrey":    {169, 169, 169, 255},
	"lightgray":   {211, 211, 211, 255},
	"lightgrey":   {211, 211, 211, 255},
	"dimgray":     {105, 105, 105, 255},
	"gainsboro":   {220, 220, 220, 255},
	"whitesmoke":  {245, 245, 245, 255},
	"snow":        {255, 250, 250, 255},
	"ivory":       {255, 255, 240, 255},
	"linen":       {250, 240, 230, 255},
	"beige":       {245, 245, 220, 255},
	"maroon":      {128, 0, 0, 255},
	"red":         {255, 0, 0, 255},
	"darkred":     {139, 0, 0, 255},
	"purple":      {128, 0, 128, 255},
	"fuchsia":     {255, 0, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"green":       {0, 128, 0, 255},
	"darkgreen":   {0, 100, 0, 255},
	"lime":        {0, 255, 0, 255},
	"olive":       {128, 128, 0, 255},
	"yellow":      {255, 255, 0, 255},
	"gold":        {255, 215, 0, 255},
	"orange":      {255, 165, 0, 255},
	"navy":        {0, 0, 128, 255},
	"blue":        {0, 0, 255, 255},
	"darkblue":    {0, 0, 139, 255},
	"teal":        {0, 128, 128, 255},
	"aqua":        {0, 255, 255, 255},
	"cyan":        {0, 255, 255, 255},
	"brown":       {165, 42, 42, 255},
	"sienna":      {160, 82, 45, 255},
	"tan":         {210, 180, 140, 255},
	"wheat":       {245, 222, 179, 255},
	"pink":        {255, 192, 203, 255},
}
