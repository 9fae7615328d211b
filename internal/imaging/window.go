package imaging

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidTileSize is returned for tile sizes below 2 pixels.
	ErrInvalidTileSize = errors.New("tile size must be at least 2 pixels")

	// ErrImageTooSmall is returned when a dimension cannot fit one tile plus
	// the one-pixel margin the clamp leaves at the far edge.
	ErrImageTooSmall = errors.New("image is too small for the tile size")
)

// Window is one square tile position of the sliding-window sweep.
type Window struct {
	// Col is the step index along the x axis.
	Col int `json:"col"`

	// Row is the step index along the y axis.
	Row int `json:"row"`

	// Rect is the tile rectangle in image coordinates.
	Rect image.Rectangle `json:"rect"`
}

// Name returns the deterministic output file stem for the window,
// "img_<row>_<col>".
func (w Window) Name() string {
	return fmt.Sprintf("img_%d_%d", w.Row, w.Col)
}

// Windows returns the overlapping tile positions covering bounds with square
// tiles of the given size.
//
// Tiles overlap by half: the stride is size/2 on both axes. Each axis has
// floor(dim/size)*2 steps and the coordinate of step i is
//
//	min(i*stride, dim-size-1)
//
// so trailing steps are clamped flush against the far edge (leaving a
// one-pixel margin) instead of overflowing. Clamped steps can repeat a
// position; each still gets its own indices.
//
// Windows are ordered column-major: all rows of column 0, then column 1, and
// so on.
//
// Returns ErrInvalidTileSize if size < 2 and ErrImageTooSmall if either
// dimension is not larger than size.
func Windows(bounds image.Rectangle, size int) ([]Window, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, size)
	}
	width, height := bounds.Dx(), bounds.Dy()
	if width <= size || height <= size {
		return nil, fmt.Errorf("%w: %dx%d image, %d pixel tiles", ErrImageTooSmall, width, height, size)
	}

	xs := axisSteps(width, size)
	ys := axisSteps(height, size)

	windows := make([]Window, 0, len(xs)*len(ys))
	for col, x := range xs {
		for row, y := range ys {
			minPt := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
			windows = append(windows, Window{
				Col:  col,
				Row:  row,
				Rect: image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(size, size))},
			})
		}
	}
	return windows, nil
}

// axisSteps returns the clamped offsets along one axis.
func axisSteps(dim, size int) []int {
	stride := size / 2
	limit := dim - size - 1
	n := dim / size * 2

	steps := make([]int, n)
	for i := range steps {
		steps[i] = min(i*stride, limit)
	}
	return steps
}
