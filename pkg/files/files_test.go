package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pprep/pkg/errors"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "img10.jpg", "img2.jpg", "img1.jpg", "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Expand([]string{
		filepath.Join(dir, "*.jpg"),
		filepath.Join(dir, "img2.jpg"),
	})
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "img1.jpg"),
		filepath.Join(dir, "img2.jpg"),
		filepath.Join(dir, "img10.jpg"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandErrors(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")

	tests := []struct {
		name     string
		patterns []string
		code     errors.Code
	}{
		{"no patterns", nil, errors.ErrCodeInvalidInput},
		{"no match", []string{filepath.Join(dir, "*.png")}, errors.ErrCodeFileNotFound},
		{"one of two without match", []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.jpg")}, errors.ErrCodeFileNotFound},
		{"bad pattern", []string{filepath.Join(dir, "[")}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.patterns)
			if !errors.Is(err, tt.code) {
				t.Errorf("Expand() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		template, input, want string
	}{
		{"out/*-print.jpg", "photos/IMG_0001.JPG", "out/IMG_0001-print.jpg"},
		{"*.png", "a/b/c.tar.gz", "c.tar.png"},
		{"single.jpg", "x.jpg", "single.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := OutputPath(tt.template, tt.input)
			if err != nil {
				t.Fatalf("OutputPath error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.template, tt.input, got, tt.want)
			}
		})
	}

	if _, err := OutputPath("out/*", "x.jpg"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("OutputPath without extension error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func TestOutputPaths(t *testing.T) {
	inputs := []string{"in/a.jpg", "in/b.jpg"}

	got, err := OutputPaths("out/*.png", inputs)
	if err != nil {
		t.Fatalf("OutputPaths error: %v", err)
	}
	if diff := cmp.Diff([]string{"out/a.png", "out/b.png"}, got); diff != "" {
		t.Errorf("OutputPaths mismatch (-want +got):\n%s", diff)
	}

	if _, err := OutputPaths("out/fixed.png", inputs); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("colliding outputs error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
	if _, err := OutputPaths("in/*.jpg", inputs); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("overwriting inputs error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
	if _, err := OutputPaths("out/*.jpg", []string{"in/a.jpg", "other/a.jpg"}); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("same base name error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}
