package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"path/filepath"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/ironsheep/barcode-tiles/internal/detection"
)

// DefaultAccentColor is the colour detected lines are drawn in.
const DefaultAccentColor = "#00ff00"

// Renderer draws accepted tiles and saves them into OutputDir.
//
// Each output image is the tile's edge map recoloured black/white with the
// detected lines overlaid in Accent, rotated about its center so the tile's
// median line angle is normalised. Files are named from the window's row and
// column indices, so concurrent renders never collide.
type Renderer struct {
	// OutputDir is the directory output images are written to. It must exist.
	OutputDir string

	// Accent is the colour lines are drawn in.
	Accent color.Color

	// Background fills pixels the rotation uncovers.
	Background color.Color

	// LineWidth is the stroke width in pixels.
	LineWidth float64
}

// NewRenderer returns a renderer writing into outputDir that draws lines in
// the hex colour accentHex ("#rrggbb" or "#rgb").
func NewRenderer(outputDir, accentHex string) (*Renderer, error) {
	accent, err := colorful.Hex(accentHex)
	if err != nil {
		return nil, fmt.Errorf("invalid accent color %q: %w", accentHex, err)
	}
	r, g, b := accent.RGB255()
	return &Renderer{
		OutputDir:  outputDir,
		Accent:     color.RGBA{R: r, G: g, B: b, A: 255},
		Background: color.White,
		LineWidth:  1,
	}, nil
}

// Render composes, rotates and saves one accepted tile. The canvas is
// rotated clockwise by π minus the median angle (in degrees). Returns the
// path written.
func (r *Renderer) Render(w Window, edges *image.Gray, lines []detection.PolarLine, medianAngle float64) (string, error) {
	composite := r.Composite(edges, lines)
	rotated := Rotate(composite, math.Pi-medianAngle*math.Pi/180, r.Background)

	path := filepath.Join(r.OutputDir, w.Name()+".png")
	if err := imaging.Save(rotated, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// Composite recolours edges to pure black/white and draws lines on top,
// each extended to the canvas borders.
func (r *Renderer) Composite(edges *image.Gray, lines []detection.PolarLine) *image.RGBA {
	bw := segment.Threshold(edges, 1)
	bounds := bw.Bounds()

	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), bw, bounds.Min, draw.Src)

	if len(lines) == 0 {
		return canvas
	}

	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(r.Accent)
	dc.SetLineWidth(r.LineWidth)
	for _, line := range lines {
		x1, y1, x2, y2, ok := line.Endpoints(bounds.Dx(), bounds.Dy())
		if !ok {
			continue
		}
		// Offset to pixel centers
		dc.DrawLine(x1+0.5, y1+0.5, x2+0.5, y2+0.5)
		dc.Stroke()
	}
	return canvas
}

// Rotate turns src clockwise by radians about its center (w/2, h/2) using
// nearest-neighbour sampling. The output has the same bounds as src and any
// pixel not covered by the rotated source is set to fill.
func Rotate(src *image.RGBA, radians float64, fill color.Color) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, &image.Uniform{C: fill}, image.Point{}, draw.Src)

	cx := float64(bounds.Min.X + bounds.Dx()/2)
	cy := float64(bounds.Min.Y + bounds.Dy()/2)
	sin, cos := math.Sincos(radians)

	// Source to destination: translate to the center, rotate, translate back
	s2d := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	xdraw.NearestNeighbor.Transform(dst, s2d, src, bounds, xdraw.Over, nil)
	return dst
}
