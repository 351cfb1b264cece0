package units

import (
	"github.com/matzehuels/pprep/pkg/errors"
)

// printFormats maps nominal metric photo formats (in cm, as typed) to the
// inch sizes they are manufactured in. Lookup is by exact string.
var printFormats = map[string]string{
	// 9x13
	"13cm/9cm": "5in/3.5in",
	"9cm/13cm": "3.5in/5in",

	// 10x15
	"15cm/10cm": "6in/4in",
	"10cm/15cm": "4in/6in",

	// 13x18
	"18cm/13cm": "7in/5in",
	"13cm/18cm": "5in/7in",

	// 15x21
	"21cm/15cm": "8.5in/6in",
	"15cm/21cm": "6in/8.5in",

	// 18x24
	"24cm/18cm": "9.5in/7in",
	"18cm/24cm": "7in/9.5in",

	// 20x30
	"30cm/20cm": "12in/8in",
	"20cm/30cm": "8in/12in",

	// 30x40
	"40cm/30cm": "16in/12in",
	"30cm/40cm": "12in/16in",

	// 30x45
	"45cm/30cm": "18in/12in",
	"30cm/45cm": "12in/18in",
}

// PrintFormat returns the exact replacement for a nominal format string.
func PrintFormat(key string) (string, bool) {
	v, ok := printFormats[key]
	return v, ok
}

// PrintFormatKeys returns the nominal formats known to ToPrintFormat.
func PrintFormatKeys() []string {
	keys := make([]string, 0, len(printFormats))
	for k := range printFormats {
		keys = append(keys, k)
	}
	return keys
}

// ToPrintFormat replaces a nominal metric print size by its exact inch
// equivalent, e.g. 15cm/10cm by 6in/4in. Sizes without a table entry are
// returned unchanged. Both dimensions must be present.
func ToPrintFormat(size Size) (Size, error) {
	if !size.IsComplete() {
		return Size{}, errors.New(errors.ErrCodeMissingDimension, "unable to determine print size, missing dimension in size %s", size)
	}
	repl, ok := printFormats[size.String()]
	if !ok {
		return size, nil
	}
	out, err := ParseSize(repl)
	if err != nil {
		return Size{}, errors.Wrap(errors.ErrCodeInternal, err, "invalid print format table entry %q", repl)
	}
	return out, nil
}
