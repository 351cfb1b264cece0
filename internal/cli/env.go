package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Environment variables.
const (
	envThreads  = "PPREP_THREADS"
	envDPI      = "PPREP_DPI"
	envCacheDir = "PPREP_CACHE_DIR"
	envRedisURL = "PPREP_REDIS_URL"
)

// envFlags maps environment variables to the flags they default.
var envFlags = []struct {
	env  string
	flag string
}{
	{envThreads, "threads"},
	{envDPI, "dpi"},
}

// loadDotEnv loads variables from path into the environment. Variables that
// are already set are kept; a missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return nil
}

// applyEnv sets flags of cmd from environment variables unless they were
// given on the command line or in a job file.
func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for _, e := range envFlags {
		v := os.Getenv(e.env)
		if v == "" {
			continue
		}
		f := flags.Lookup(e.flag)
		if f == nil || f.Changed {
			continue
		}
		if err := flags.Set(e.flag, v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s=%q", e.env, v)
		}
	}
	return nil
}
