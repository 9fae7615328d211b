package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// ErrNotRegularFile is returned by LoadGray when the input path exists but
// is a directory or other non-regular file.
var ErrNotRegularFile = errors.New("input is not a regular file")

// LoadGray opens an image file and converts it to 8-bit grayscale.
//
// Parameters:
//   - path: Path to the image file. Supported formats are PNG, JPEG, GIF and
//     the other formats registered with disintegration/imaging.
//
// Returns:
//   - *image.Gray: The decoded image with luminance computed using the
//     standard library Gray color model (ITU-R BT.601 weights). Bounds
//     start at (0,0).
//   - error: Non-nil if the file does not exist, is not a regular file, or
//     cannot be decoded.
//
// EXIF orientation is applied before conversion.
func LoadGray(path string) (*image.Gray, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return ToGray(img), nil
}

// ToGray returns a freshly allocated grayscale copy of img with bounds
// rebased to (0,0). If img is already an *image.Gray it is still copied.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}
