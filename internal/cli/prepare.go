package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pprep/pkg/files"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/pipeline"
	"github.com/matzehuels/pprep/pkg/units"
)

// prepareCommand creates the prepare command.
func (c *CLI) prepareCommand() *cobra.Command {
	opts := pipeline.NewPrepareOptions()
	var (
		patterns []string
		format   *units.Size
	)

	cmd := &cobra.Command{
		Use:   "prepare [patterns...]",
		Short: "Lay photos out on a print format",
		Long: `Lay photos out on a print format and render them at the given resolution.

The photo size is set by exactly one of --image-size and --framed-size, the
space around it by exactly one of --padding and --margins. --framed-size cannot
be combined with --margins. The photo keeps its aspect ratio and is centered;
the canvas is turned to match the photo's orientation unless --no-rotation.

Lengths accept px, mm, cm and in. Sizes are width/height where either side may
be "." (e.g. 10cm/.). Borders take 1 to 4 values: all, vertical/horizontal,
top/horizontal/bottom or top/right/bottom/left.`,
		Example: `  pprep prepare -i 'photos/*.jpg' -o 'prints/*.jpg' --format 15cm/10cm --image-size 13cm/9cm --padding 0
  pprep prepare -i img.png -o '*-print.png' --format 6in/4in --framed-size 5in/3in --padding 2mm --border 1mm --cut-marks 3mm`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != nil {
				opts.Format = *format
			}
			return c.runPrepare(cmd, append(patterns, args...), opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&patterns, "input", "i", nil, "input file patterns")
	f.StringVarP(&opts.Output, "output", "o", "", "output path, `*` is replaced by the input file name")
	f.Var(optionalFlag(&format, "size", units.ParseSize), "format", "print format width/height, e.g. 15cm/10cm")
	f.BoolVar(&opts.ExactFormat, "exact-format", false, "use the format as given instead of the exact size of known print formats")
	f.Float64Var(&opts.DPI, "dpi", opts.DPI, "resolution for physical lengths")
	f.Var(optionalFlag(&opts.Constraints.ImageSize, "size", units.ParseFixSize), layout.OptImageSize, "maximum photo size")
	f.Var(optionalFlag(&opts.Constraints.FramedSize, "size", units.ParseFixSize), layout.OptFramedSize, "maximum size of photo plus padding")
	f.Var(optionalFlag(&opts.Constraints.Padding, "borders", units.ParseBorders), layout.OptPadding, "space between photo and frame")
	f.Var(optionalFlag(&opts.Constraints.Margins, "borders", units.ParseBorders), layout.OptMargins, "minimum space between frame and canvas edge")
	f.BoolVar(&opts.NoRotation, "no-rotation", false, "never turn the canvas to match the photo orientation")
	f.Var(valueFlag(&opts.Background, "color", units.ParseColor), "bg", "canvas color")
	f.Var(optionalFlag(&opts.PadColor, "color", units.ParseColor), "pad-color", "padding color (default: canvas color)")
	f.Var(optionalFlag(&opts.Border, "borders", units.ParseBorders), "border", "border width drawn inside the frame")
	f.Var(valueFlag(&opts.BorderColor, "color", units.ParseColor), "border-color", "border color")
	f.Var(optionalFlag(&opts.CutMarks, "length", units.ParseLength), "cut-marks", "length of cut marks in the margins")
	f.Var(optionalFlag(&opts.CutMarksOffset, "length", units.ParseLength), "cut-marks-offset", "gap between frame and cut marks")
	f.Var(valueFlag(&opts.CutMarksColor, "color", units.ParseColor), "cut-marks-color", "cut mark color")
	f.Var(valueFlag(&opts.Filter, "filter", imageops.ParseFilter), "filter", "resampling filter")
	f.IntVarP(&opts.Quality, "quality", "q", opts.Quality, "JPEG quality in percent")

	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("format")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(units.PrintFormatKeys(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("filter", cobra.FixedCompletions(imageops.FilterNames, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runPrepare(cmd *cobra.Command, patterns []string, opts pipeline.PrepareOptions) error {
	ctx := cmd.Context()
	out := newPrinter(cmd.OutOrStdout())

	if err := opts.Validate(); err != nil {
		return err
	}
	canvas, err := opts.Canvas()
	if err != nil {
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
	runner, stop := c.newRunner(ctx, "Preparing", len(inputs))
	err = runner.Prepare(ctx, inputs, opts)
	stop()
	if err != nil {
		return err
	}
	t.done("prepared", "files", len(inputs))

	out.success("Prepared %d files", len(inputs))
	out.keyValue("canvas", canvas.String())
	out.keyValue("dpi", formatFloat(opts.DPI))
	for _, path := range outputs {
		out.file(path)
	}
	return nil
}
