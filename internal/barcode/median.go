package barcode

import "fmt"

// MedianMode selects how Median treats even-length input.
type MedianMode string

const (
	// MedianLegacy computes (v[n/2]-1+v[n/2])/2 in integer arithmetic, i.e.
	// the upper middle element minus one half, truncated. Rendered rotations
	// of existing outputs depend on this value.
	MedianLegacy MedianMode = "legacy"

	// MedianConventional averages the two middle elements.
	MedianConventional MedianMode = "conventional"
)

// ParseMedianMode validates a mode name from configuration. The empty
// string selects MedianLegacy.
func ParseMedianMode(s string) (MedianMode, error) {
	switch MedianMode(s) {
	case "", MedianLegacy:
		return MedianLegacy, nil
	case MedianConventional:
		return MedianConventional, nil
	default:
		return "", fmt.Errorf("unknown median mode %q (want %q or %q)", s, MedianLegacy, MedianConventional)
	}
}

// Median returns the median of an ascending list. Odd-length lists return
// the middle element in either mode. An empty list returns 0.
func Median(sorted []int, mode MedianMode) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}

	if mode == MedianConventional {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	hi := sorted[n/2]
	return float64((hi - 1 + hi) / 2)
}
