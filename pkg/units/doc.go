// Package units provides the unit-aware geometry value types used to describe
// a print layout: lengths, sizes, borders, relative scales and colors.
//
// All types are immutable values. They are parsed once from configuration
// strings and then converted between physical units (mm, cm, in) and device
// pixels with a resolution in dots per inch supplied at conversion time.
//
// # Grammar
//
// Lengths are a number with an optional unit suffix; pixels are the default:
//
//	1024     1024px
//	5cm      12.5mm      6in
//
// Sizes and borders are slash separated lists of lengths. A `.` omits one
// dimension of a Size:
//
//	15cm/10cm    ./512px                   (Size)
//	2cm          1cm/2cm    1/2/3/4mm...   (Borders: all, top-bottom/right-left, t/r/b/l)
//
// # Print formats
//
// Nominal metric photo formats such as 15cm/10cm are manufactured to exact
// inch sizes (6in/4in). ToPrintFormat maps the former to the latter so that
// the pixel canvas matches the paper exactly.
package units
