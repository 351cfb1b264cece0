package units

import (
	"testing"

	"github.com/matzehuels/pprep/pkg/errors"
)

func TestToPrintFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15cm/10cm", "6in/4in"},
		{"10cm/15cm", "4in/6in"},
		{"13cm/9cm", "5in/3.5in"},
		{"21cm/15cm", "8.5in/6in"},
		{"15.0cm/10cm", "6in/4in"},
		{"150mm/100mm", "150mm/100mm"},
		{"16cm/10cm", "16cm/10cm"},
		{"1800px/1200px", "1800px/1200px"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseSize(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ToPrintFormat(s)
			if err != nil {
				t.Fatalf("ToPrintFormat(%q) error: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("ToPrintFormat(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
}

func TestToPrintFormatMissingDimension(t *testing.T) {
	s, err := ParseSize("15cm/.")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ToPrintFormat(s); !errors.Is(err, errors.ErrCodeMissingDimension) {
		t.Errorf("ToPrintFormat error = %v, want %v", err, errors.ErrCodeMissingDimension)
	}
}

func TestPrintFormatTable(t *testing.T) {
	keys := PrintFormatKeys()
	if len(keys) != 16 {
		t.Errorf("len(PrintFormatKeys()) = %d, want 16", len(keys))
	}
	for _, k := range keys {
		v, ok := PrintFormat(k)
		if !ok {
			t.Fatalf("PrintFormat(%q) missing", k)
		}
		key, err := ParseFixSize(k)
		if err != nil {
			t.Errorf("key %q does not parse: %v", k, err)
			continue
		}
		val, err := ParseFixSize(v)
		if err != nil {
			t.Errorf("value %q does not parse: %v", v, err)
			continue
		}
		if key.String() != k || val.String() != v {
			t.Errorf("entry %q -> %q is not in canonical form", k, v)
		}
		// Orientation must be preserved by the replacement.
		if (key.Width().Value() > key.Height().Value()) != (val.Width().Value() > val.Height().Value()) {
			t.Errorf("entry %q -> %q changes orientation", k, v)
		}
	}
}
