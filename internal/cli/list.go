package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pprep/pkg/cache"
	"github.com/matzehuels/pprep/pkg/exif"
	"github.com/matzehuels/pprep/pkg/files"
	"github.com/matzehuels/pprep/pkg/pipeline"
)

type listOptions struct {
	patterns []string
	fullPath bool
	absolute bool
	exif     bool
	fields   []string
	noCache  bool
}

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var o listOptions

	cmd := &cobra.Command{
		Use:   "list [patterns...]",
		Short: "List input files, optionally with EXIF data",
		Example: `  pprep list -i 'photos/*.jpg'
  pprep list 'photos/*.jpg' --exif --exif-fields Mod,Exp,F/2,ISO`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.patterns = append(o.patterns, args...)
			return c.runList(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&o.patterns, "input", "i", nil, "input file patterns")
	f.BoolVar(&o.fullPath, "path", false, "print the path as matched instead of the file name")
	f.BoolVar(&o.absolute, "absolute", false, "print absolute paths")
	f.BoolVar(&o.exif, "exif", false, "print pixel size and EXIF data")
	f.StringSliceVar(&o.fields, "exif-fields", nil, "EXIF fields to print, by abbreviation or name (default: all)")
	f.BoolVar(&o.noCache, "no-cache", false, "read metadata without the cache")

	abbrevs := make([]string, len(exif.Fields))
	for i, fld := range exif.Fields {
		abbrevs[i] = fld.Abbrev
	}
	_ = cmd.RegisterFlagCompletionFunc("exif-fields", cobra.FixedCompletions(abbrevs, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runList(cmd *cobra.Command, o listOptions) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	fields, err := parseExifFields(o.fields)
	if err != nil {
		return err
	}
	inputs, err := files.Expand(o.patterns)
	if err != nil {
		return err
	}

	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i], err = displayName(in, o)
		if err != nil {
			return err
		}
	}
	if !o.exif {
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	store, err := newCache(ctx, o.noCache)
	if err != nil {
		newPrinter(cmd.ErrOrStderr()).warning("metadata cache unavailable: %v", err)
		store = cache.NewNullCache()
	}
	defer store.Close()

	runner, stop := c.newRunner(ctx, "Reading", len(inputs))
	metas, err := runner.Metadata(ctx, inputs, pipeline.NewMetadataReader(store))
	stop()
	if err != nil {
		return err
	}
	writeMetadata(w, names, metas, fields)
	return nil
}

func displayName(path string, o listOptions) (string, error) {
	switch {
	case o.absolute:
		return filepath.Abs(path)
	case o.fullPath:
		return path, nil
	default:
		return filepath.Base(path), nil
	}
}

// parseExifFields resolves field names; none selects all fields.
func parseExifFields(names []string) ([]exif.Field, error) {
	if len(names) == 0 {
		return nil, nil
	}
	fields := make([]exif.Field, 0, len(names))
	for _, n := range names {
		f, err := exif.LookupField(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// writeMetadata prints one aligned line per file, unstyled for piping.
func writeMetadata(w io.Writer, names []string, metas []*exif.Metadata, fields []exif.Field) {
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for i, m := range metas {
		fmt.Fprintf(w, "%-*s  %s\n", width, names[i], metadataSummary(m, fields))
	}
}

func metadataSummary(m *exif.Metadata, fields []exif.Field) string {
	size := fmt.Sprintf("%dx%d", m.Width, m.Height)
	if fields == nil {
		if s := m.Summary(); s != "" {
			return size + " " + s
		}
		return size
	}
	parts := []string{size}
	for _, f := range fields {
		if v, ok := m.Tags[f.Abbrev]; ok {
			parts = append(parts, f.Abbrev+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
