package units

import (
	"image/color"
	"testing"

	"github.com/matzehuels/pprep/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"white", White},
		{"Black", Black},
		{"transparent", Color{0, 0, 0, 0}},
		{"128", Color{128, 128, 128, 255}},
		{"10/20/30", Color{10, 20, 30, 255}},
		{"10/20/30/40", Color{10, 20, 30, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "256", "1/2", "1/2/3/4/5", "-1/0/0"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseColor(in); !errors.Is(err, errors.ErrCodeInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want %v", in, err, errors.ErrCodeInvalidColor)
			}
		})
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color{1, 2, 3, 4}
	if got := c.NRGBA(); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("NRGBA() = %v", got)
	}
	parsed, err := ParseColor(c.String())
	if err != nil || parsed != c {
		t.Errorf("ParseColor(%q) = %v, %v, want %v", c.String(), parsed, err, c)
	}
}
