// Package files resolves input patterns and output path templates for batch
// operations.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/facette/natsort"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Placeholder in output templates, replaced by the input base name.
const Placeholder = "*"

// Expand resolves glob patterns to regular files. Every pattern must match at
// least one file. Duplicates are removed and the result is sorted naturally,
// so img2.jpg comes before img10.jpg.
func Expand(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no input files given")
	}

	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid input pattern %q", pattern)
		}

		found := 0
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			found++
			clean := filepath.Clean(m)
			if seen[clean] {
				continue
			}
			seen[clean] = true
			out = append(out, clean)
		}
		if found == 0 {
			return nil, errors.New(errors.ErrCodeFileNotFound, "no files found for pattern %q", pattern)
		}
	}

	natsort.Sort(out)
	return out, nil
}

// OutputPath derives the output path of input from template by replacing the
// placeholder with the input's base name without extension.
func OutputPath(template, input string) (string, error) {
	if err := errors.ValidateOutputTemplate(template); err != nil {
		return "", err
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Replace(template, Placeholder, stem, 1), nil
}

// OutputPaths maps every input to its output path. It fails if two inputs
// would be written to the same file or an output would overwrite an input.
func OutputPaths(template string, inputs []string) ([]string, error) {
	inputSet := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		inputSet[absOrClean(in)] = true
	}

	owner := make(map[string]string, len(inputs))
	out := make([]string, len(inputs))
	for i, in := range inputs {
		p, err := OutputPath(template, in)
		if err != nil {
			return nil, err
		}
		key := absOrClean(p)
		if prev, ok := owner[key]; ok {
			return nil, errors.New(errors.ErrCodeInvalidPath, "inputs %s and %s both write to %s, use `%s` in the output path", prev, in, p, Placeholder)
		}
		if inputSet[key] {
			return nil, errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite an input file", p)
		}
		owner[key] = in
		out[i] = p
	}
	return out, nil
}

func absOrClean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
