// Package pkg provides the libraries behind the pprep command.
//
// # Overview
//
// pprep turns photos into print-ready images: a photo is laid out on a print
// format such as 15cm/10cm with margins, padding, an optional border and cut
// marks, then rendered at a given resolution. The packages build on each
// other:
//
//  1. [units] - lengths with units, sizes, borders, scales, colors and the
//     print format table
//  2. [layout] - the pure layout solver turning constraints into pixel boxes
//  3. [imageops] - decoding, resampling, canvas composition and atomic saving
//  4. [exif] - short EXIF summaries
//  5. [files] - input pattern expansion and output path templates
//  6. [cache] - metadata cache backends (file, Redis, null)
//  7. [pipeline] - option validation and the parallel batch runner
//
// # Data Flow
//
//	input patterns
//	      ↓ files.Expand
//	decoded photo ─────────────┐
//	      ↓                    │
//	print format → canvas (px) │
//	      ↓ layout.Solve       │
//	layout.Result ─────────────┤
//	      ↓ imageops.Compose   ↓
//	rendered canvas → imageops.Save
//
// All lengths are converted to pixels at the requested DPI before the solver
// runs; the solver and the value types are pure and safe for concurrent use.
//
// [units]: github.com/matzehuels/pprep/pkg/units
// [layout]: github.com/matzehuels/pprep/pkg/layout
// [imageops]: github.com/matzehuels/pprep/pkg/imageops
// [exif]: github.com/matzehuels/pprep/pkg/exif
// [files]: github.com/matzehuels/pprep/pkg/files
// [cache]: github.com/matzehuels/pprep/pkg/cache
// [pipeline]: github.com/matzehuels/pprep/pkg/pipeline
package pkg
