package imageops

import (
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pprep/pkg/errors"
)

// Filter is a named resampling filter.
type Filter struct {
	name     string
	resample imaging.ResampleFilter
}

// DefaultFilter is Catmull-Rom bicubic resampling.
var DefaultFilter = Filter{name: "cubic", resample: imaging.CatmullRom}

var filters = map[string]imaging.ResampleFilter{
	"nearest": imaging.NearestNeighbor,
	"linear":  imaging.Linear,
	"cubic":   imaging.CatmullRom,
	"gauss":   imaging.Gaussian,
	"lanczos": imaging.Lanczos,
}

// FilterNames lists the accepted filter names.
var FilterNames = []string{"nearest", "linear", "cubic", "gauss", "lanczos"}

// ParseFilter parses one of FilterNames.
func ParseFilter(s string) (Filter, error) {
	r, ok := filters[s]
	if !ok {
		return Filter{}, errors.New(errors.ErrCodeInvalidFilter, "%q is not a valid filter, must be one of (%s)", s, strings.Join(FilterNames, "|"))
	}
	return Filter{name: s, resample: r}, nil
}

// String returns the filter name.
func (f Filter) String() string {
	if f.name == "" {
		return DefaultFilter.name
	}
	return f.name
}

// Resample returns the imaging filter, falling back to DefaultFilter for the
// zero value.
func (f Filter) Resample() imaging.ResampleFilter {
	if f.name == "" {
		return DefaultFilter.resample
	}
	return f.resample
}
