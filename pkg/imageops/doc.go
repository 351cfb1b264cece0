// Package imageops decodes, resizes, composes and encodes raster images.
//
// It is the pixel side of pprep: the layout package decides where things go,
// this package puts them there. Resampling and encoding use
// github.com/disintegration/imaging; rectangle fills use golang.org/x/image/draw.
package imageops
