package imageops

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/pprep/pkg/errors"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 95

// Open decodes the image at path, applying its EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "unable to decode image %s", path)
	}
	return img, nil
}

// DecodeConfig reads the stored pixel size and format of the image at path
// without decoding the pixels. EXIF orientation is not applied.
func DecodeConfig(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s not found", path)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, "", errors.Wrap(errors.ErrCodeUnsupported, err, "unable to read image header of %s", path)
	}
	return cfg, format, nil
}

// Save encodes img to path. The format follows the file extension; quality
// applies to JPEG output. The file is written next to its destination under a
// temporary name and renamed into place, so readers never see partial output.
func Save(img image.Image, path string, quality int) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "unsupported output format for %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
	}

	tmp := filepath.Join(dir, ".pprep-"+uuid.NewString()+filepath.Ext(path))
	if err := imaging.Save(img, tmp, imaging.JPEGQuality(quality)); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "move output into place at %s", path)
	}
	return nil
}
