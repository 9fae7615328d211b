package barcode

import (
	"errors"
	"fmt"
)

// Default analysis parameters.
const (
	DefaultTileSize          = 750
	DefaultEdgeLow           = 1.0
	DefaultEdgeHigh          = 175.0
	DefaultVoteThreshold     = 150
	DefaultSuppressionRadius = 8
	DefaultBatchSize         = 5
	DefaultHighThreshold     = 30
	DefaultLowThreshold      = 5
	DefaultDecisionThreshold = 75
	DefaultWorkers           = 1
)

// Config holds every tunable of a scan.
type Config struct {
	// TileSize is the side of the square sliding window in pixels.
	TileSize int `toml:"tile_size"`

	// EdgeLow and EdgeHigh are the Canny hysteresis thresholds.
	EdgeLow  float64 `toml:"edge_low"`
	EdgeHigh float64 `toml:"edge_high"`

	// VoteThreshold and SuppressionRadius configure the Hough detector.
	VoteThreshold     int `toml:"vote_threshold"`
	SuppressionRadius int `toml:"suppression_radius"`

	// BatchSize, HighThreshold and LowThreshold configure the Estimator.
	BatchSize     int `toml:"batch_size"`
	HighThreshold int `toml:"high_threshold"`
	LowThreshold  int `toml:"low_threshold"`

	// DecisionThreshold is the probability a tile must exceed (strictly) to
	// be accepted.
	DecisionThreshold int `toml:"decision_threshold"`

	// MedianMode selects the even-length median formula.
	MedianMode MedianMode `toml:"median_mode"`

	// Workers bounds how many tiles are analysed at once.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		TileSize:          DefaultTileSize,
		EdgeLow:           DefaultEdgeLow,
		EdgeHigh:          DefaultEdgeHigh,
		VoteThreshold:     DefaultVoteThreshold,
		SuppressionRadius: DefaultSuppressionRadius,
		BatchSize:         DefaultBatchSize,
		HighThreshold:     DefaultHighThreshold,
		LowThreshold:      DefaultLowThreshold,
		DecisionThreshold: DefaultDecisionThreshold,
		MedianMode:        MedianLegacy,
		Workers:           DefaultWorkers,
	}
}

// Estimator returns the estimator configured by c.
func (c Config) Estimator() Estimator {
	return Estimator{
		BatchSize:     c.BatchSize,
		HighThreshold: c.HighThreshold,
		LowThreshold:  c.LowThreshold,
	}
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var errs []error
	if c.TileSize < 2 {
		errs = append(errs, fmt.Errorf("tile_size must be at least 2, got %d", c.TileSize))
	}
	if c.EdgeLow < 0 || c.EdgeHigh < c.EdgeLow {
		errs = append(errs, fmt.Errorf("edge thresholds must satisfy 0 <= low <= high, got %g/%g", c.EdgeLow, c.EdgeHigh))
	}
	if c.VoteThreshold < 1 {
		errs = append(errs, fmt.Errorf("vote_threshold must be positive, got %d", c.VoteThreshold))
	}
	if c.SuppressionRadius < 0 {
		errs = append(errs, fmt.Errorf("suppression_radius must not be negative, got %d", c.SuppressionRadius))
	}
	if c.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("batch_size must not be negative, got %d", c.BatchSize))
	}
	if c.HighThreshold <= c.LowThreshold {
		errs = append(errs, fmt.Errorf("high_threshold must exceed low_threshold, got %d/%d", c.HighThreshold, c.LowThreshold))
	}
	if c.DecisionThreshold < 0 || c.DecisionThreshold > 100 {
		errs = append(errs, fmt.Errorf("decision_threshold must be within [0,100], got %d", c.DecisionThreshold))
	}
	if _, err := ParseMedianMode(string(c.MedianMode)); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	return errors.Join(errs...)
}
