package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ExtractTile copies a rectangular region of img into a new grayscale buffer.
//
// The returned tile owns its pixels (nothing is shared with img) and its
// bounds start at (0,0), so tiles can be processed concurrently and mutated
// freely. The region must lie fully inside img.
func ExtractTile(img image.Image, rect image.Rectangle) (*image.Gray, error) {
	bounds := img.Bounds()

	// Validate coordinates
	if !rect.In(bounds) {
		return nil, fmt.Errorf("tile region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if rect.Empty() {
		return nil, fmt.Errorf("invalid tile region: x1 must be < x2, y1 must be < y2")
	}

	if gray, ok := img.(*image.Gray); ok {
		return copyGray(gray, rect), nil
	}

	return ToGray(imaging.Crop(img, rect)), nil
}

// copyGray copies rows straight out of the source buffer.
func copyGray(src *image.Gray, rect image.Rectangle) *image.Gray {
	w, h := rect.Dx(), rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := src.PixOffset(rect.Min.X, rect.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[srcOff:srcOff+w])
	}
	return dst
}
