package barcode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/barcode-tiles/internal/detection"
	"github.com/ironsheep/barcode-tiles/internal/imaging"
)

// EdgeDetector turns a grayscale tile into a binary edge map of the same size.
type EdgeDetector interface {
	DetectEdges(tile *image.Gray, low, high float64) *image.Gray
}

// LineDetector finds straight lines in a binary edge map.
type LineDetector interface {
	DetectLines(edges *image.Gray, voteThreshold, suppressionRadius int) []detection.PolarLine
}

// Renderer persists an accepted tile and returns where it was written.
type Renderer interface {
	Render(w imaging.Window, edges *image.Gray, lines []detection.PolarLine, medianAngle float64) (string, error)
}

// Verdict is the outcome of analysing one tile that contained lines.
type Verdict struct {
	Window        imaging.Window `json:"window"`
	LineCount     int            `json:"line_count"`
	MedianAngle   float64        `json:"median_angle"`
	Probability   int            `json:"probability"`
	DominantAngle int            `json:"dominant_angle"`
	Accepted      bool           `json:"accepted"`
	OutputPath    string         `json:"output_path,omitempty"`
}

// ScanResult summarises a full scan.
type ScanResult struct {
	// Windows is the number of tiles visited.
	Windows int `json:"windows"`

	// WithLines counts tiles where at least one line was detected.
	WithLines int `json:"with_lines"`

	// Accepted holds the accepted verdicts in window order.
	Accepted []Verdict `json:"accepted"`
}

// Analyzer runs the per-tile pipeline: edges, lines, angle statistics,
// decision and rendering.
type Analyzer struct {
	cfg       Config
	estimator Estimator
	edges     EdgeDetector
	lines     LineDetector
	renderer  Renderer
	logger    *log.Logger
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithEdgeDetector replaces the default Canny detector.
func WithEdgeDetector(d EdgeDetector) Option {
	return func(a *Analyzer) { a.edges = d }
}

// WithLineDetector replaces the default Hough detector.
func WithLineDetector(d LineDetector) Option {
	return func(a *Analyzer) { a.lines = d }
}

// WithLogger sets the logger for per-tile diagnostics. By default nothing
// is logged.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer validates cfg and returns an analyzer that renders accepted
// tiles with renderer.
func NewAnalyzer(cfg Config, renderer Renderer, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if renderer == nil {
		return nil, errors.New("renderer must not be nil")
	}

	a := &Analyzer{
		cfg:       cfg,
		estimator: cfg.Estimator(),
		edges:     imaging.CannyDetector{},
		lines:     detection.HoughDetector{},
		renderer:  renderer,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AnalyzeTile scores the tile at w. It returns a nil verdict when no lines
// are found. Accepted tiles are rendered before returning.
func (a *Analyzer) AnalyzeTile(img image.Image, w imaging.Window) (*Verdict, error) {
	tile, err := imaging.ExtractTile(img, w.Rect)
	if err != nil {
		return nil, err
	}

	edges := a.edges.DetectEdges(tile, a.cfg.EdgeLow, a.cfg.EdgeHigh)
	lines := a.lines.DetectLines(edges, a.cfg.VoteThreshold, a.cfg.SuppressionRadius)
	if len(lines) == 0 {
		return nil, nil
	}

	angles := make([]int, len(lines))
	for i, l := range lines {
		angles[i] = l.AngleDegrees
	}
	sort.Ints(angles)

	v := &Verdict{
		Window:      w,
		LineCount:   len(lines),
		MedianAngle: Median(angles, a.cfg.MedianMode),
	}
	v.Probability, v.DominantAngle = a.estimator.Estimate(angles)

	a.logger.Debug("tile scored",
		"row", w.Row, "col", w.Col,
		"lines", v.LineCount,
		"probability", v.Probability,
		"dominant", v.DominantAngle,
		"median", v.MedianAngle)

	if v.Probability <= a.cfg.DecisionThreshold {
		return v, nil
	}

	v.Accepted = true
	v.OutputPath, err = a.renderer.Render(w, edges, lines, v.MedianAngle)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", w.Name(), err)
	}
	a.logger.Info("barcode candidate",
		"row", w.Row, "col", w.Col,
		"probability", v.Probability,
		"angle", v.DominantAngle,
		"path", v.OutputPath)
	return v, nil
}

// Scan analyses every sliding-window tile of img, running up to
// Config.Workers tiles at once. The first error stops the scan.
func (a *Analyzer) Scan(ctx context.Context, img image.Image) (*ScanResult, error) {
	windows, err := imaging.Windows(img.Bounds(), a.cfg.TileSize)
	if err != nil {
		return nil, err
	}

	verdicts := make([]*Verdict, len(windows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := a.AnalyzeTile(img, w)
			if err != nil {
				return err
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &ScanResult{Windows: len(windows)}
	for _, v := range verdicts {
		if v == nil {
			continue
		}
		result.WithLines++
		if v.Accepted {
			result.Accepted = append(result.Accepted, *v)
		}
	}
	return result, nil
}
