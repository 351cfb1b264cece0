package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pprep/pkg/buildinfo"
	"github.com/matzehuels/pprep/pkg/cache"
	"github.com/matzehuels/pprep/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pprep"

	// envFile is loaded from the working directory if present.
	envFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	threads    int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pprep prepares photos for printing",
		Long: `pprep lays photos out on print formats such as 15cm/10cm at a given resolution,
with margins, padding, borders and cut marks, and scales photos in batches.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(envFile); err != nil {
				return err
			}
			if c.configPath != "" {
				cfg, err := loadConfig(c.configPath)
				if err != nil {
					return err
				}
				if err := cfg.apply(cmd); err != nil {
					return err
				}
			}
			if err := applyEnv(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "TOML job file with default flag values")
	pf.IntVarP(&c.threads, "threads", "t", 0, "number of images processed in parallel (0 = one per CPU)")

	root.AddCommand(c.prepareCommand())
	root.AddCommand(c.scaleCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner reporting progress for total files.
// The returned function stops the progress display.
func (c *CLI) newRunner(ctx context.Context, title string, total int) (*pipeline.Runner, func()) {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(c.threads, logger)
	p := startProgress(ctx, logger, title, total)
	runner.OnProgress = p.update
	return runner, p.stop
}

// newCache opens the metadata cache: Redis when PPREP_REDIS_URL is set,
// otherwise a file cache in cacheDir.
func newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(envRedisURL); url != "" {
		return cache.NewRedisCache(ctx, url)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory: PPREP_CACHE_DIR if set, else the XDG
// standard (~/.cache/pprep/).
func cacheDir() (string, error) {
	if dir := os.Getenv(envCacheDir); dir != "" {
		return dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
