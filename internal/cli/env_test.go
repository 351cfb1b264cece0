package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/pprep/pkg/errors"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name        string
		threads     string
		dpi         string
		args        []string
		wantThreads int
		wantDPI     float64
		wantErr     bool
	}{
		{"unset", "", "", nil, 0, 300, false},
		{"from env", "3", "150", nil, 3, 150, false},
		{"flag wins", "3", "150", []string{"--dpi", "72"}, 3, 72, false},
		{"invalid", "many", "", nil, 0, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envThreads, tt.threads)
			t.Setenv(envDPI, tt.dpi)

			var v testFlags
			cmd := newTestCommand("prepare", &v)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			err := applyEnv(cmd)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("applyEnv error = %v, want %v", err, errors.ErrCodeInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyEnv error: %v", err)
			}
			if v.threads != tt.wantThreads || v.dpi != tt.wantDPI {
				t.Errorf("threads, dpi = %d, %g, want %d, %g", v.threads, v.dpi, tt.wantThreads, tt.wantDPI)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PPREP_TEST_DOTENV=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PPREP_TEST_DOTENV", "")
	os.Unsetenv("PPREP_TEST_DOTENV")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv error: %v", err)
	}
	if got := os.Getenv("PPREP_TEST_DOTENV"); got != "42" {
		t.Errorf("PPREP_TEST_DOTENV = %q, want 42", got)
	}
}
