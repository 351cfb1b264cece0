// Package layout solves the print box model.
//
// A print is a stack of nested rectangles:
//
//	canvas  = margins + framed + margins
//	framed  = padding + photo  + padding
//
// The caller pins two of four quantities, one from each group:
//
//	{image-size, framed-size} x {padding, margins}
//
// framed-size together with margins is rejected. [Solve] derives the rest,
// decides whether the canvas is rotated to match the photo's orientation, and
// shrinks the photo to keep its aspect ratio. All inputs and outputs are in
// pixels; convert with [units.FixSize.To] and [units.Borders.To] first.
//
// Rounding is fixed so results are reproducible:
//   - contain fit: the touching axis takes the box dimension, the other axis
//     is rounded to the nearest pixel
//   - an odd remainder split over two sides gives the extra pixel to the
//     leading side (top or left)
//
// Solve is a pure function and safe for concurrent use.
package layout
