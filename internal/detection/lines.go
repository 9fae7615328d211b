package detection

import (
	"image"
	"math"
)

// PolarLine is a straight line in Hough (normal) form:
//
//	R = x*cos(θ) + y*sin(θ)
//
// where θ is AngleDegrees. Lines are direction-agnostic, so the angle is
// always in [0,180). R may be negative.
type PolarLine struct {
	R            float64 `json:"r"`
	AngleDegrees int     `json:"angle_degrees"`
}

// Options controls Hough line detection.
type Options struct {
	// VoteThreshold is the minimum number of edge pixels a line needs.
	VoteThreshold int

	// SuppressionRadius is the half-width of the non-maximum suppression
	// window in accumulator space (angle bins by radius bins).
	SuppressionRadius int
}

// HoughDetector finds straight lines in binary edge maps. The zero value is
// ready to use.
type HoughDetector struct{}

// DetectLines implements the line detector used by the tile analyzer.
func (HoughDetector) DetectLines(edges *image.Gray, voteThreshold, suppressionRadius int) []PolarLine {
	return DetectLines(edges, Options{
		VoteThreshold:     voteThreshold,
		SuppressionRadius: suppressionRadius,
	})
}

const numAngles = 180

var cosTable, sinTable = trigTables()

func trigTables() ([numAngles]float64, [numAngles]float64) {
	var c, s [numAngles]float64
	for theta := 0; theta < numAngles; theta++ {
		angle := float64(theta) * math.Pi / 180.0
		c[theta] = math.Cos(angle)
		s[theta] = math.Sin(angle)
	}
	return c, s
}

// DetectLines runs a Hough transform over every non-zero pixel of edges and
// returns the lines whose accumulator cell reaches opts.VoteThreshold and is a
// local maximum within opts.SuppressionRadius.
//
// Lines are returned in accumulator order: ascending angle, then ascending
// radius. Returns nil for an image with no edge pixels.
func DetectLines(edges *image.Gray, opts Options) []PolarLine {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	maxDist := int(math.Ceil(math.Sqrt(float64(width*width + height*height))))
	numRadii := 2*maxDist + 1

	// accumulator[theta*numRadii + rhoIdx]
	accumulator := make([]int, numAngles*numRadii)

	// Vote in Hough space
	voted := false
	for y := 0; y < height; y++ {
		row := edges.Pix[y*edges.Stride : y*edges.Stride+width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			voted = true
			fx, fy := float64(x), float64(y)
			for theta := 0; theta < numAngles; theta++ {
				rho := fx*cosTable[theta] + fy*sinTable[theta]
				rhoIdx := int(math.Round(rho)) + maxDist
				accumulator[theta*numRadii+rhoIdx]++
			}
		}
	}
	if !voted {
		return nil
	}

	threshold := opts.VoteThreshold
	if threshold < 1 {
		threshold = 1
	}
	radius := opts.SuppressionRadius
	if radius < 0 {
		radius = 0
	}

	var lines []PolarLine
	for theta := 0; theta < numAngles; theta++ {
		for rhoIdx := 0; rhoIdx < numRadii; rhoIdx++ {
			votes := accumulator[theta*numRadii+rhoIdx]
			if votes < threshold {
				continue
			}
			if !isLocalMax(accumulator, numRadii, theta, rhoIdx, radius) {
				continue
			}
			lines = append(lines, PolarLine{
				R:            float64(rhoIdx - maxDist),
				AngleDegrees: theta,
			})
		}
	}

	return lines
}

// isLocalMax reports whether the cell at (theta, rhoIdx) wins its
// suppression window. On equal votes the earliest cell in accumulator order
// wins, so a plateau yields exactly one line.
func isLocalMax(accumulator []int, numRadii, theta, rhoIdx, radius int) bool {
	votes := accumulator[theta*numRadii+rhoIdx]
	here := theta*numRadii + rhoIdx

	for dt := -radius; dt <= radius; dt++ {
		nt := theta + dt
		if nt < 0 || nt >= numAngles {
			continue
		}
		for dr := -radius; dr <= radius; dr++ {
			nr := rhoIdx + dr
			if nr < 0 || nr >= numRadii || (dt == 0 && dr == 0) {
				continue
			}
			idx := nt*numRadii + nr
			other := accumulator[idx]
			if other > votes || (other == votes && idx < here) {
				return false
			}
		}
	}
	return true
}

// Endpoints returns the segment where line crosses a width x height canvas,
// extended to the canvas borders. ok is false if the line misses the canvas.
func (l PolarLine) Endpoints(width, height int) (x1, y1, x2, y2 float64, ok bool) {
	c := cosTable[l.AngleDegrees%numAngles]
	s := sinTable[l.AngleDegrees%numAngles]
	w, h := float64(width), float64(height)

	if math.Abs(s) > math.Abs(c) {
		// Closer to horizontal: solve for y at the left and right borders
		x1, x2 = 0, w
		y1 = (l.R - x1*c) / s
		y2 = (l.R - x2*c) / s
		if (y1 < 0 && y2 < 0) || (y1 > h && y2 > h) {
			return 0, 0, 0, 0, false
		}
		return x1, y1, x2, y2, true
	}

	// Closer to vertical: solve for x at the top and bottom borders
	y1, y2 = 0, h
	x1 = (l.R - y1*s) / c
	x2 = (l.R - y2*s) / c
	if (x1 < 0 && x2 < 0) || (x1 > w && x2 > w) {
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, true
}
