package imageops

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/units"
)

// ScaleOptions control Scale.
type ScaleOptions struct {
	Mode       units.ScaleMode
	Filter     Filter
	Background units.Color

	// Incremental halves the image with 2x2 averaging while it is more than
	// three times the target size on both axes, before the final resample.
	Incremental bool
}

// TargetSize resolves a pixel size with an optional missing dimension against
// the source size. A missing dimension follows the source aspect ratio, in
// which case complete is false.
func TargetSize(srcW, srcH int, size units.Size) (w, h int, complete bool) {
	wl, hasW := size.Width()
	hl, hasH := size.Height()
	switch {
	case hasW && hasH:
		return wl.Int(), hl.Int(), true
	case hasW:
		w = wl.Int()
		return w, roundDiv(w, srcH, srcW), false
	default:
		h = hl.Int()
		return roundDiv(h, srcW, srcH), h, false
	}
}

// roundDiv returns round(a*b/c).
func roundDiv(a, b, c int) int {
	if c == 0 {
		return 0
	}
	return int(float64(a)*float64(b)/float64(c) + 0.5)
}

// Scale resizes img to width x height according to opts.Mode.
func Scale(img image.Image, width, height int, opts ScaleOptions) *image.NRGBA {
	if opts.Incremental {
		img = HalveWhileLarger(img, width, height)
	}
	filter := opts.Filter.Resample()
	b := img.Bounds()

	switch opts.Mode {
	case units.ScaleStretch:
		return imaging.Resize(img, width, height, filter)
	case units.ScaleCrop:
		return imaging.Fill(img, width, height, imaging.Center, filter)
	case units.ScaleFill:
		w, h := layout.Fit(b.Dx(), b.Dy(), width, height)
		fitted := imaging.Resize(img, w, h, filter)
		bg := imaging.New(width, height, opts.Background.NRGBA())
		return imaging.Paste(bg, fitted, image.Pt((width-w)/2, (height-h)/2))
	default:
		w, h := layout.Fit(b.Dx(), b.Dy(), width, height)
		return imaging.Resize(img, w, h, filter)
	}
}

// HalveWhileLarger halves img while both dimensions exceed three times the
// target size. Each step averages 2x2 pixel blocks.
func HalveWhileLarger(img image.Image, width, height int) image.Image {
	for {
		b := img.Bounds()
		if b.Dx() <= 3*width || b.Dy() <= 3*height {
			return img
		}
		img = Halve(img)
	}
}

// Halve returns img at half its size, each pixel the mean of a 2x2 block.
func Halve(img image.Image) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()/2, b.Dy()/2, imaging.Box)
}
