package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pprep/pkg/files"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/pipeline"
	"github.com/matzehuels/pprep/pkg/units"
)

var scaleModes = []string{"keep", "fill", "crop", "stretch"}

// scaleCommand creates the scale command.
func (c *CLI) scaleCommand() *cobra.Command {
	opts := pipeline.NewScaleOptions()
	var patterns []string

	cmd := &cobra.Command{
		Use:   "scale [patterns...]",
		Short: "Resize photos to a size or by a factor",
		Long: `Resize photos to an absolute size (--size) or by a relative factor (--scale).

With --scale or a complete --size, --mode decides how the aspect ratio is handled: keep
fits the photo inside the size, fill pads it with --bg, crop cuts the surplus
and stretch distorts. If one side of --size is ".", the aspect ratio is kept.
--scale accepts factors and percentages, e.g. 0.5 or 50%/25%.`,
		Example: `  pprep scale -i 'photos/*.jpg' -o 'small/*.jpg' --size 1024px/.
  pprep scale -i img.png -o '*-half.png' --scale 50%`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScale(cmd, append(patterns, args...), opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&patterns, "input", "i", nil, "input file patterns")
	f.StringVarP(&opts.Output, "output", "o", "", "output path, `*` is replaced by the input file name")
	f.Var(optionalFlag(&opts.Size, "size", units.ParseSize), "size", "target size width/height")
	f.Var(optionalFlag(&opts.Scale, "scale", units.ParseScale), "scale", "relative factor, one value or width/height")
	f.Var(valueFlag(&opts.Mode, "mode", units.ParseScaleMode), "mode", "aspect ratio handling (keep|fill|crop|stretch)")
	f.Var(valueFlag(&opts.Filter, "filter", imageops.ParseFilter), "filter", "resampling filter")
	f.BoolVar(&opts.Incremental, "incremental", false, "halve repeatedly before the final resize of large reductions")
	f.Float64Var(&opts.DPI, "dpi", opts.DPI, "resolution for physical lengths")
	f.Var(valueFlag(&opts.Background, "color", units.ParseColor), "bg", "fill color for --mode fill")
	f.IntVarP(&opts.Quality, "quality", "q", opts.Quality, "JPEG quality in percent")

	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("size", "scale")
	cmd.MarkFlagsOneRequired("size", "scale")
	_ = cmd.RegisterFlagCompletionFunc("mode", cobra.FixedCompletions(scaleModes, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("filter", cobra.FixedCompletions(imageops.FilterNames, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runScale(cmd *cobra.Command, patterns []string, opts pipeline.ScaleOptions) error {
	ctx := cmd.Context()
	out := newPrinter(cmd.OutOrStdout())

	if err := opts.Validate(); err != nil {
		return err
	}
	inputs, err := files.Expand(patterns)
	if err != nil {
		return err
	}
	outputs, err := files.OutputPaths(opts.Output, inputs)
	if err != nil {
		return err
	}

	t := newTimer(loggerFromContext(ctx))
	runner, stop := c.newRunner(ctx, "Scaling", len(inputs))
	err = runner.Scale(ctx, inputs, opts)
	stop()
	if err != nil {
		return err
	}
	t.done("scaled", "files", len(inputs))

	out.success("Scaled %d files", len(inputs))
	for _, path := range outputs {
		out.file(path)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
