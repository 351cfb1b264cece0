package imageops

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/matzehuels/pprep/pkg/layout"
	"github.com/matzehuels/pprep/pkg/units"
)

// Style holds the drawing parameters of a print. Lengths are in pixels.
type Style struct {
	Background units.Color
	// PadColor fills the framed rectangle behind the photo. Nil means
	// Background.
	PadColor *units.Color
	Filter   Filter

	Border      units.Borders
	BorderColor units.Color

	// CutMarks is the length of the cut marks; zero disables them.
	CutMarks       int
	CutMarksOffset int
	CutMarksColor  units.Color
}

// cutMarkWidth is the stroke width of cut marks in pixels.
const cutMarkWidth = 1

// Compose renders photo into the canvas described by r.
func Compose(photo image.Image, r layout.Result, style Style) *image.NRGBA {
	canvas := imaging.New(r.Canvas.Width().Int(), r.Canvas.Height().Int(), style.Background.NRGBA())

	framed := r.FramedRect()
	pad := style.Background
	if style.PadColor != nil {
		pad = *style.PadColor
	}
	if pad != style.Background {
		fill(canvas, framed, pad.NRGBA())
	}

	pr := r.PhotoRect()
	resized := imaging.Resize(photo, pr.Dx(), pr.Dy(), style.Filter.Resample())
	draw.Draw(canvas, pr, resized, image.Point{}, draw.Over)

	drawBorder(canvas, framed, style.Border, style.BorderColor.NRGBA())
	if style.CutMarks > 0 {
		drawCutMarks(canvas, framed, style.CutMarks, style.CutMarksOffset, style.CutMarksColor.NRGBA())
	}
	return canvas
}

// drawBorder strokes b just inside the edges of rect.
func drawBorder(dst draw.Image, rect image.Rectangle, b units.Borders, c color.Color) {
	top, right, bottom, left := b.Top().Int(), b.Right().Int(), b.Bottom().Int(), b.Left().Int()
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+top), c)
	fill(dst, image.Rect(rect.Max.X-right, rect.Min.Y, rect.Max.X, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Min.X, rect.Max.Y-bottom, rect.Max.X, rect.Max.Y), c)
	fill(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+left, rect.Max.Y), c)
}

// drawCutMarks draws marks of the given length in the margins, in line with
// the edges of rect and offset away from it.
func drawCutMarks(dst draw.Image, rect image.Rectangle, length, offset int, c color.Color) {
	xs := []int{rect.Min.X, rect.Max.X - cutMarkWidth}
	ys := []int{rect.Min.Y, rect.Max.Y - cutMarkWidth}

	for _, x := range xs {
		fill(dst, image.Rect(x, rect.Min.Y-offset-length, x+cutMarkWidth, rect.Min.Y-offset), c)
		fill(dst, image.Rect(x, rect.Max.Y+offset, x+cutMarkWidth, rect.Max.Y+offset+length), c)
	}
	for _, y := range ys {
		fill(dst, image.Rect(rect.Min.X-offset-length, y, rect.Min.X-offset, y+cutMarkWidth), c)
		fill(dst, image.Rect(rect.Max.X+offset, y, rect.Max.X+offset+length, y+cutMarkWidth), c)
	}
}

// fill paints r, clipped to dst, with a solid color.
func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
