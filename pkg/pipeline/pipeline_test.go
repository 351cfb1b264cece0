package pipeline

import (
	"context"
	stderrors "errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pprep/pkg/cache"
	"github.com/matzehuels/pprep/pkg/errors"
	"github.com/matzehuels/pprep/pkg/imageops"
	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/observability"
	"github.com/matzehuels/pprep/pkg/units"
)

func mustSize(t *testing.T, s string) units.Size {
	t.Helper()
	v, err := units.ParseSize(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func mustFixSize(t *testing.T, s string) *units.FixSize {
	t.Helper()
	v, err := units.ParseFixSize(s)
	if err != nil {
		t.Fatal(err)
	}
	return &v
}

func mustBorders(t *testing.T, s string) *units.Borders {
	t.Helper()
	v, err := units.ParseBorders(s)
	if err != nil {
		t.Fatal(err)
	}
	return &v
}

func validPrepareOptions(t *testing.T) PrepareOptions {
	opts := NewPrepareOptions()
	opts.Output = "out/*.jpg"
	opts.Format = mustSize(t, "15cm/10cm")
	opts.Constraints = layout.Constraints{
		ImageSize: mustFixSize(t, "1200px/800px"),
		Padding:   mustBorders(t, "20px"),
	}
	return opts
}

func writeImages(t *testing.T, dir string, w, h int, names ...string) []string {
	t.Helper()
	var paths []string
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := imaging.Save(imaging.New(w, h, color.NRGBA{R: 200, A: 255}), p); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestPrepareOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *PrepareOptions)
		code   errors.Code
	}{
		{"valid", func(o *PrepareOptions) {}, ""},
		{"missing output", func(o *PrepareOptions) { o.Output = "" }, errors.ErrCodeInvalidPath},
		{"negative dpi", func(o *PrepareOptions) { o.DPI = -1 }, errors.ErrCodeInvalidInput},
		{"quality too high", func(o *PrepareOptions) { o.Quality = 101 }, errors.ErrCodeInvalidInput},
		{"incomplete format", func(o *PrepareOptions) { o.Format = mustSize(t, "15cm/.") }, errors.ErrCodeMissingDimension},
		{"framed-size with margins", func(o *PrepareOptions) {
			o.Constraints = layout.Constraints{FramedSize: mustFixSize(t, "10cm/8cm"), Margins: mustBorders(t, "1cm")}
		}, errors.ErrCodeOverdeterminedLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validPrepareOptions(t)
			tt.modify(&opts)
			err := opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestPrepareOptionsDefaults(t *testing.T) {
	opts := PrepareOptions{Output: "x.jpg", Format: mustSize(t, "6in/4in")}
	opts.Constraints = layout.Constraints{ImageSize: mustFixSize(t, "5in/3in"), Padding: mustBorders(t, "0")}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if opts.DPI != DefaultDPI {
		t.Errorf("DPI = %v, want %v", opts.DPI, DefaultDPI)
	}
	if opts.Quality != DefaultQuality {
		t.Errorf("Quality = %v, want %v", opts.Quality, DefaultQuality)
	}
}

func TestPrepareOptionsCanvas(t *testing.T) {
	opts := validPrepareOptions(t)
	canvas, err := opts.Canvas()
	if err != nil {
		t.Fatal(err)
	}
	if canvas.String() != "1800px/1200px" {
		t.Errorf("Canvas() = %v, want 1800px/1200px", canvas)
	}

	opts.ExactFormat = true
	canvas, err = opts.Canvas()
	if err != nil {
		t.Fatal(err)
	}
	if canvas.String() != "1772px/1181px" {
		t.Errorf("exact Canvas() = %v, want 1772px/1181px", canvas)
	}
}

func TestPrepareImage(t *testing.T) {
	opts := validPrepareOptions(t)
	out, res, err := PrepareImage(imaging.New(400, 300, color.NRGBA{R: 255, A: 255}), &opts)
	if err != nil {
		t.Fatalf("PrepareImage error: %v", err)
	}
	if out.Bounds().Dx() != 1800 || out.Bounds().Dy() != 1200 {
		t.Errorf("output bounds = %v, want 1800x1200", out.Bounds())
	}
	if res.Photo.String() != "1067px/800px" || res.Framed.String() != "1107px/840px" {
		t.Errorf("layout = photo %v framed %v, want 1067px/800px and 1107px/840px", res.Photo, res.Framed)
	}
	if res.Margins.String() != "180px/346px/180px/347px" {
		t.Errorf("margins = %v, want 180px/346px/180px/347px", res.Margins)
	}
	if got := out.NRGBAAt(0, 0); got != units.White.NRGBA() {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestPrepareImageDegenerate(t *testing.T) {
	opts := validPrepareOptions(t)
	opts.Constraints = layout.Constraints{ImageSize: mustFixSize(t, "10in/10in"), Padding: mustBorders(t, "0")}
	_, _, err := PrepareImage(imaging.New(40, 30, color.Black), &opts)
	if !errors.Is(err, errors.ErrCodeDegenerateLayout) {
		t.Errorf("PrepareImage error = %v, want %v", err, errors.ErrCodeDegenerateLayout)
	}
}

func TestRunnerPrepare(t *testing.T) {
	dir := t.TempDir()
	inputs := writeImages(t, dir, 60, 40, "a1.png", "a2.png", "a10.png")

	opts := NewPrepareOptions()
	opts.Output = filepath.Join(dir, "out", "*-print.png")
	opts.Format = mustSize(t, "2in/1in")
	opts.DPI = 100
	opts.Constraints = layout.Constraints{ImageSize: mustFixSize(t, "150/80"), Margins: mustBorders(t, "5")}
	opts.Border = mustBorders(t, "1px")

	var calls atomic.Int32
	r := NewRunner(2, nil)
	r.OnProgress = func(done, total int, file string) {
		calls.Add(1)
		if total != 3 {
			t.Errorf("OnProgress total = %d, want 3", total)
		}
	}

	if err := r.Prepare(context.Background(), inputs, opts); err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("OnProgress called %d times, want 3", calls.Load())
	}

	for _, name := range []string{"a1-print.png", "a2-print.png", "a10-print.png"} {
		cfg, _, err := imageops.DecodeConfig(filepath.Join(dir, "out", name))
		if err != nil {
			t.Errorf("output %s: %v", name, err)
			continue
		}
		if cfg.Width != 200 || cfg.Height != 100 {
			t.Errorf("output %s = %dx%d, want 200x100", name, cfg.Width, cfg.Height)
		}
	}
}

func TestRunnerPrepareCollision(t *testing.T) {
	dir := t.TempDir()
	inputs := writeImages(t, dir, 10, 10, "a.png", "b.png")

	opts := validPrepareOptions(t)
	opts.Output = filepath.Join(dir, "same.png")
	err := NewRunner(1, nil).Prepare(context.Background(), inputs, opts)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Prepare error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func TestRunnerPrepareCanvasError(t *testing.T) {
	dir := t.TempDir()
	inputs := writeImages(t, dir, 10, 10, "a.png")

	opts := validPrepareOptions(t)
	opts.Output = filepath.Join(dir, "out", "*.png")
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	// A format changed after validation no longer yields a canvas.
	opts.Format = mustSize(t, "./10cm")
	opts.ExactFormat = true

	err := NewRunner(1, nil).Prepare(context.Background(), inputs, opts)
	if !errors.Is(err, errors.ErrCodeMissingDimension) {
		t.Errorf("Prepare error = %v, want %v", err, errors.ErrCodeMissingDimension)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "a.png")); !os.IsNotExist(err) {
		t.Errorf("output written despite canvas error: %v", err)
	}
}

func TestScaleOptionsValidate(t *testing.T) {
	size := mustSize(t, "100/.")
	scale, err := units.ParseScale("50%")
	if err != nil {
		t.Fatal(err)
	}
	zero := mustSize(t, "0/.")

	tests := []struct {
		name  string
		size  *units.Size
		scale *units.Scale
		code  errors.Code
	}{
		{"size", &size, nil, ""},
		{"scale", nil, &scale, ""},
		{"neither", nil, nil, errors.ErrCodeInvalidInput},
		{"both", &size, &scale, errors.ErrCodeInvalidInput},
		{"zero width", &zero, nil, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewScaleOptions()
			opts.Output = "out/*.png"
			opts.Size, opts.Scale = tt.size, tt.scale
			err := opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestScaleImage(t *testing.T) {
	src := imaging.New(400, 300, color.Black)
	scale, _ := units.ParseScale("50%/25%")

	tests := []struct {
		name         string
		size         string
		scale        *units.Scale
		mode         units.ScaleMode
		wantW, wantH int
	}{
		{"relative keep", "", &scale, units.ScaleKeep, 100, 75},
		{"relative stretch", "", &scale, units.ScaleStretch, 200, 75},
		{"relative fill", "", &scale, units.ScaleFill, 200, 75},
		{"width only", "100/.", nil, units.ScaleStretch, 100, 75},
		{"keep", "100/100", nil, units.ScaleKeep, 100, 75},
		{"fill", "100/100", nil, units.ScaleFill, 100, 100},
		{"physical", "1in/.", nil, units.ScaleKeep, 300, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewScaleOptions()
			opts.Output = "out/*.png"
			opts.Mode = tt.mode
			opts.Scale = tt.scale
			if tt.size != "" {
				s := mustSize(t, tt.size)
				opts.Size = &s
			}
			out, err := ScaleImage(src, &opts)
			if err != nil {
				t.Fatalf("ScaleImage error: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("ScaleImage() = %v, want %dx%d", out.Bounds().Size(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRunnerScale(t *testing.T) {
	dir := t.TempDir()
	inputs := writeImages(t, dir, 80, 40, "x.png")

	opts := NewScaleOptions()
	opts.Output = filepath.Join(dir, "small", "*.jpg")
	s := mustSize(t, "./10")
	opts.Size = &s

	if err := NewRunner(0, nil).Scale(context.Background(), inputs, opts); err != nil {
		t.Fatalf("Scale error: %v", err)
	}
	cfg, format, err := imageops.DecodeConfig(filepath.Join(dir, "small", "x.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 || cfg.Height != 10 || format != "jpeg" {
		t.Errorf("output = %dx%d %s, want 20x10 jpeg", cfg.Width, cfg.Height, format)
	}
}

func TestRunnerRunError(t *testing.T) {
	inputs := []string{"a.jpg", "b.jpg", "c.jpg"}
	err := NewRunner(1, nil).Run(context.Background(), inputs, func(ctx context.Context, i int) error {
		if i == 1 {
			return errors.New(errors.ErrCodeInvalidLength, "boom")
		}
		return nil
	})
	if !errors.Is(err, errors.ErrCodeInvalidLength) {
		t.Fatalf("Run error = %v, want %v", err, errors.ErrCodeInvalidLength)
	}
	if !strings.HasPrefix(err.Error(), "b.jpg: ") {
		t.Errorf("Run error = %q, want prefix with file name", err.Error())
	}
}

func TestRunnerRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := NewRunner(2, nil).Run(ctx, []string{"a", "b"}, func(ctx context.Context, i int) error {
		calls.Add(1)
		return nil
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancel, want 0", calls.Load())
	}
}

func TestMetadataReader(t *testing.T) {
	dir := t.TempDir()
	inputs := writeImages(t, dir, 30, 20, "m1.png", "m2.png")

	c, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	reader := NewMetadataReader(c)
	ctx := context.Background()

	meta, hit, err := reader.Read(ctx, inputs[0])
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if hit {
		t.Error("first Read should miss the cache")
	}
	if meta.Width != 30 || meta.Height != 20 {
		t.Errorf("Read() = %dx%d, want 30x20", meta.Width, meta.Height)
	}

	_, hit, err = reader.Read(ctx, inputs[0])
	if err != nil || !hit {
		t.Errorf("second Read = hit %v, err %v, want cache hit", hit, err)
	}

	all, err := NewRunner(2, nil).Metadata(ctx, inputs, reader)
	if err != nil {
		t.Fatalf("Metadata error: %v", err)
	}
	if len(all) != 2 || all[1].Format != "png" {
		t.Errorf("Metadata() = %v", all)
	}

	if _, _, err := reader.Read(ctx, filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Read of a missing file should fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "cache")); err != nil {
		t.Errorf("cache dir missing: %v", err)
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	images, failed, batches atomic.Int32
	hits, misses            atomic.Int32
}

func (h *countingHooks) OnImageComplete(_ context.Context, _, _ string, _ time.Duration, err error) {
	h.images.Add(1)
	if err != nil {
		h.failed.Add(1)
	}
}

func (h *countingHooks) OnBatchComplete(context.Context, string, int, time.Duration, error) {
	h.batches.Add(1)
}

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.hits.Add(1) }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.misses.Add(1) }

func TestRunnerHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	t.Cleanup(observability.Reset)

	dir := t.TempDir()
	inputs := writeImages(t, dir, 16, 16, "h1.png", "h2.png")
	c, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	reader := NewMetadataReader(c)
	r := NewRunner(2, nil)

	for i := 0; i < 2; i++ {
		if _, err := r.Metadata(context.Background(), inputs, reader); err != nil {
			t.Fatal(err)
		}
	}

	if h.images.Load() != 4 || h.failed.Load() != 0 || h.batches.Load() != 2 {
		t.Errorf("images, failed, batches = %d, %d, %d, want 4, 0, 2", h.images.Load(), h.failed.Load(), h.batches.Load())
	}
	if h.misses.Load() != 2 || h.hits.Load() != 2 {
		t.Errorf("cache misses, hits = %d, %d, want 2, 2", h.misses.Load(), h.hits.Load())
	}
}
