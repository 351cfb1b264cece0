package cli

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/pprep/pkg/errors"
)

// commandTables are the job file tables holding per-command flags.
var commandTables = []string{"prepare", "scale", "list"}

// jobConfig is a parsed TOML job file. Top-level keys set flags of whatever
// command runs, a table named after the command sets that command's flags:
//
//	threads = 4
//	dpi = 300
//
//	[prepare]
//	input = ["photos/*.jpg"]
//	output = "prints/*.jpg"
//	format = "15cm/10cm"
//	image-size = "13cm/9cm"
//	padding = "0"
type jobConfig struct {
	path   string
	global map[string]any
	tables map[string]map[string]any
}

// loadConfig reads the job file at path.
func loadConfig(path string) (*jobConfig, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "job file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid job file %s", path)
	}

	cfg := &jobConfig{
		path:   path,
		global: make(map[string]any),
		tables: make(map[string]map[string]any),
	}
	for key, v := range raw {
		if t, ok := v.(map[string]any); ok {
			if !slices.Contains(commandTables, key) {
				return nil, errors.New(errors.ErrCodeInvalidInput, "%s: unknown table [%s], expects one of %v", path, key, commandTables)
			}
			cfg.tables[key] = t
			continue
		}
		cfg.global[key] = v
	}
	return cfg, nil
}

// apply sets the flags of cmd that were not given on the command line.
// Command tables take precedence over top-level keys. Top-level keys without
// a matching flag are skipped; unknown keys in the command table are errors.
func (c *jobConfig) apply(cmd *cobra.Command) error {
	flags := cmd.Flags()
	explicit := make(map[string]bool)
	flags.Visit(func(f *pflag.Flag) { explicit[f.Name] = true })

	for _, key := range sortedKeys(c.global) {
		if key == "config" || explicit[key] || flags.Lookup(key) == nil {
			continue
		}
		if err := c.set(flags, key, c.global[key]); err != nil {
			return err
		}
	}

	table := c.tables[cmd.Name()]
	for _, key := range sortedKeys(table) {
		if flags.Lookup(key) == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s: unknown option %q in [%s]", c.path, key, cmd.Name())
		}
		if explicit[key] {
			continue
		}
		if err := c.set(flags, key, table[key]); err != nil {
			return err
		}
	}
	return nil
}

func (c *jobConfig) set(flags *pflag.FlagSet, name string, v any) error {
	f := flags.Lookup(name)
	if list, ok := v.([]any); ok {
		sv, ok := f.Value.(pflag.SliceValue)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s: option %q takes a single value", c.path, name)
		}
		vals := make([]string, len(list))
		for i, item := range list {
			vals[i] = fmt.Sprint(item)
		}
		if err := sv.Replace(vals); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: option %q", c.path, name)
		}
		f.Changed = true
		return nil
	}
	if err := flags.Set(name, fmt.Sprint(v)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: option %q", c.path, name)
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
