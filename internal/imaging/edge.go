package imaging

import (
	"image"
	"math"
)

// CannyDetector is the edge detector used by the tile analyzer. The zero
// value is ready to use.
type CannyDetector struct{}

// DetectEdges implements the analyzer's edge detector contract.
func (CannyDetector) DetectEdges(tile *image.Gray, low, high float64) *image.Gray {
	return Canny(tile, low, high)
}

// Canny performs Canny edge detection on a grayscale image.
//
// Parameters:
//   - img: Source grayscale image.
//   - low: Low hysteresis threshold on the Sobel gradient magnitude.
//   - high: High hysteresis threshold on the Sobel gradient magnitude.
//
// Gradient magnitudes are measured on the raw 0-255 intensity scale, so a
// unit step between black and white produces a magnitude of about 1020
// before blurring.
//
// Returns a binary edge map with the same dimensions as img whose bounds
// start at (0,0). Edge pixels are 255, everything else 0.
//
// # Algorithm
//
//  1. Gaussian blur: 5x5 kernel to reduce noise
//
//  2. Gradient computation: Sobel operators for X and Y gradients
//     magnitude = sqrt(Gx² + Gy²)
//     direction = atan2(Gy, Gx)
//
//  3. Non-maximum suppression: Thin edges to 1-pixel width by keeping only
//     local maxima in the gradient direction
//
//  4. Hysteresis thresholding:
//     - Pixels at or above high are strong edges (always kept)
//     - Pixels between low and high are weak edges
//     (kept only if 8-connected, possibly through other weak edges, to a
//     strong edge)
//     - Pixels below low are discarded
func Canny(img *image.Gray, low, high float64) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gray := make([][]float64, height)
	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x, v := range row {
			gray[y][x] = float64(v)
		}
	}

	// Apply Gaussian blur to reduce noise
	blurred := gaussianBlur(gray, width, height)

	// Compute gradients using Sobel operator
	magnitude := make([][]float64, height)
	direction := make([][]float64, height)

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)

		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += blurred[py][px] * sobelX[ky+1][kx+1]
					gy += blurred[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	suppressed := nonMaxSuppression(magnitude, direction, width, height)

	return hysteresis(suppressed, low, high, width, height)
}

// nonMaxSuppression keeps only pixels that are local maxima along their
// gradient direction. Border pixels are always suppressed.
func nonMaxSuppression(magnitude, direction [][]float64, width, height int) [][]float64 {
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			angle := direction[y][x]
			mag := magnitude[y][x]
			if mag == 0 {
				continue
			}

			// Determine neighbors to compare based on gradient direction
			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			} else {
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}
	return suppressed
}

// hysteresis applies the double threshold and grows strong edges through
// connected weak pixels.
func hysteresis(suppressed [][]float64, low, high float64, width, height int) *image.Gray {
	result := image.NewGray(image.Rect(0, 0, width, height))

	type point struct{ x, y int }
	var stack []point

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if suppressed[y][x] >= high && suppressed[y][x] > 0 {
				result.Pix[y*result.Stride+x] = 255
				stack = append(stack, point{x, y})
			}
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				nx, ny := p.x+kx, p.y+ky
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				idx := ny*result.Stride + nx
				if result.Pix[idx] != 0 {
					continue
				}
				v := suppressed[ny][nx]
				if v >= low && v > 0 {
					result.Pix[idx] = 255
					stack = append(stack, point{nx, ny})
				}
			}
		}
	}

	return result
}

// gaussianBlur applies a 5x5 Gaussian blur to reduce noise before edge detection.
//
// Uses a standard 5x5 Gaussian kernel with sigma ≈ 1.4:
//
//	1  4  7  4  1
//	4 16 26 16  4
//	7 26 41 26  7
//	4 16 26 16  4
//	1  4  7  4  1
//
// Total kernel sum = 273, used for normalization.
// Border pixels use clamped (replicated) edge values.
func gaussianBlur(img [][]float64, width, height int) [][]float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	kernelSum := 273.0

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += img[py][px] * kernel[ky+2][kx+2]
				}
			}
			result[y][x] = sum / kernelSum
		}
	}
	return result
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
