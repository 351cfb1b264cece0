package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputTemplate validates an output path template such as
// "out/*-print.jpg". The `*` placeholder is replaced by the input base name.
//
// Validation rules:
//   - Template cannot be empty
//   - No null bytes or control characters
//   - The file name must carry an extension, which selects the encoder
//   - At most one `*` placeholder, and only in the file name
func ValidateOutputTemplate(template string) error {
	if template == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range template {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path %q contains invalid characters", template)
		}
	}

	base := filepath.Base(template)
	if filepath.Ext(base) == "" || filepath.Ext(base) == base {
		return New(ErrCodeInvalidPath, "output path %q needs a file extension to determine the image format", template)
	}

	if strings.Count(template, "*") > 1 {
		return New(ErrCodeInvalidPath, "output path %q may contain at most one `*` placeholder", template)
	}
	if strings.Contains(filepath.Dir(template), "*") {
		return New(ErrCodeInvalidPath, "output path %q: `*` is only allowed in the file name", template)
	}

	return nil
}

// ValidateDPI checks that a resolution is usable for unit conversion.
func ValidateDPI(dpi float64) error {
	if !(dpi > 0) || math.IsInf(dpi, 1) {
		return New(ErrCodeInvalidInput, "dpi must be positive, got %g", dpi)
	}
	return nil
}

// ValidateQuality checks a JPEG quality value in percent.
func ValidateQuality(q int) error {
	if q < 1 || q > 100 {
		return New(ErrCodeInvalidInput, "quality must be between 1 and 100, got %d", q)
	}
	return nil
}
