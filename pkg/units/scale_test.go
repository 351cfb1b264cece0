package units

import (
	"testing"

	"github.com/matzehuels/pprep/pkg/errors"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in   string
		w, h float64
	}{
		{"0.5", 0.5, 0.5},
		{"50%", 0.5, 0.5},
		{"0.5/2", 0.5, 2},
		{"25%/.", 0.25, 0.25},
		{"./3", 3, 3},
		{"200%/50%", 2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseScale(tt.in)
			if err != nil {
				t.Fatalf("ParseScale(%q) error: %v", tt.in, err)
			}
			if s.Width() != tt.w || s.Height() != tt.h {
				t.Errorf("ParseScale(%q) = %v/%v, want %v/%v", tt.in, s.Width(), s.Height(), tt.w, tt.h)
			}
		})
	}
}

func TestParseScaleErrors(t *testing.T) {
	for _, in := range []string{"", "./.", "0", "-1", "1/2/3", "x%", "abc"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseScale(in); !errors.Is(err, errors.ErrCodeInvalidScale) {
				t.Errorf("ParseScale(%q) error = %v, want %v", in, err, errors.ErrCodeInvalidScale)
			}
		})
	}
}

func TestScaleApply(t *testing.T) {
	s, err := NewScale(0.5, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	w, h := s.Apply(1001, 400)
	if w != 501 || h != 100 {
		t.Errorf("Apply() = %dx%d, want 501x100", w, h)
	}
}

func TestParseScaleMode(t *testing.T) {
	for _, m := range []ScaleMode{ScaleKeep, ScaleFill, ScaleCrop, ScaleStretch} {
		got, err := ParseScaleMode(m.String())
		if err != nil {
			t.Fatalf("ParseScaleMode(%q) error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseScaleMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseScaleMode("zoom"); !errors.Is(err, errors.ErrCodeInvalidScale) {
		t.Errorf("ParseScaleMode(zoom) error = %v, want %v", err, errors.ErrCodeInvalidScale)
	}
}
