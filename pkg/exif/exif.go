// Package exif reads a short summary of photo metadata.
package exif

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/matzehuels/pprep/pkg/errors"
	"github.com/matzehuels/pprep/pkg/imageops"
)

// Field is an EXIF field with its short display name.
type Field struct {
	Abbrev string
	Name   goexif.FieldName
}

// Fields lists the summarized fields in display order.
var Fields = []Field{
	{"Mod", goexif.Model},
	{"SW", goexif.Software},
	{"A", goexif.Artist},
	{"F", goexif.FocalLength},
	{"Exp", goexif.ExposureTime},
	{"F/2", goexif.FNumber},
	{"Prog", goexif.ExposureProgram},
	{"ISO", goexif.ISOSpeedRatings},
	{"Date", goexif.DateTimeOriginal},
	{"Bias", goexif.ExposureBiasValue},
	{"MM", goexif.MeteringMode},
	{"EM", goexif.ExposureMode},
	{"LS", goexif.LightSource},
	{"CS", goexif.ColorSpace},
	{"SM", goexif.SensingMethod},
	{"WB", goexif.WhiteBalance},
}

// LookupField finds a field by abbreviation or full EXIF name.
func LookupField(s string) (Field, error) {
	for _, f := range Fields {
		if f.Abbrev == s || strings.EqualFold(string(f.Name), s) {
			return f, nil
		}
	}
	return Field{}, errors.New(errors.ErrCodeInvalidInput, "unknown EXIF field %q", s)
}

// Metadata is the pixel size and EXIF summary of an image file.
type Metadata struct {
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Format string            `json:"format"`
	Tags   map[string]string `json:"tags,omitempty"` // keyed by Field.Abbrev
}

// Read collects metadata of the image at path. Files without EXIF data yield
// metadata with no tags.
func Read(path string) (*Metadata, error) {
	cfg, format, err := imageops.DecodeConfig(path)
	if err != nil {
		return nil, err
	}
	meta := &Metadata{Width: cfg.Width, Height: cfg.Height, Format: format}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	tags, err := Decode(f)
	if err == nil {
		meta.Tags = tags
	}
	return meta, nil
}

// Decode reads the summarized fields from a JPEG, TIFF or raw EXIF stream.
func Decode(r io.Reader) (map[string]string, error) {
	x, err := goexif.Decode(r)
	if x == nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "no EXIF data")
	}
	tags := make(map[string]string)
	for _, f := range Fields {
		tag, err := x.Get(f.Name)
		if err != nil || tag == nil {
			continue
		}
		if v := formatTag(f.Name, tag); v != "" {
			tags[f.Abbrev] = v
		}
	}
	return tags, nil
}

func formatTag(name goexif.FieldName, tag *tiff.Tag) string {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimRight(s, "\x00"))
	case tiff.RatVal:
		num, den, err := tag.Rat2(0)
		if err != nil || den == 0 {
			return ""
		}
		if name == goexif.ExposureTime && num == 1 && den > 1 {
			return fmt.Sprintf("1/%d", den)
		}
		return strconv.FormatFloat(float64(num)/float64(den), 'g', 4, 64)
	case tiff.IntVal:
		v, err := tag.Int(0)
		if err != nil {
			return ""
		}
		return strconv.Itoa(v)
	}
	return strings.Trim(tag.String(), `"`)
}

// Summary formats the tags as `Abbrev=value` pairs in Fields order.
func (m *Metadata) Summary() string {
	var parts []string
	for _, f := range Fields {
		if v, ok := m.Tags[f.Abbrev]; ok {
			parts = append(parts, f.Abbrev+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
