// Package config loads scanner settings from defaults and an optional TOML
// file.
//
// A configuration file may set any subset of keys; everything else keeps its
// default:
//
//	[scan]
//	tile_size = 750
//	edge_low = 1.0
//	edge_high = 175.0
//	vote_threshold = 150
//	suppression_radius = 8
//	batch_size = 5
//	high_threshold = 30
//	low_threshold = 5
//	decision_threshold = 75
//	median_mode = "legacy"   # or "conventional"
//	workers = 1
//
//	[render]
//	accent_color = "#00ff00"
//	line_width = 1.0
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/barcode-tiles/internal/barcode"
	"github.com/ironsheep/barcode-tiles/internal/imaging"
)

// Config is the complete runtime configuration.
type Config struct {
	Scan   barcode.Config `toml:"scan"`
	Render Render         `toml:"render"`
}

// Render holds output image settings.
type Render struct {
	// AccentColor is the hex colour detected lines are drawn in.
	AccentColor string `toml:"accent_color"`

	// LineWidth is the stroke width of drawn lines in pixels.
	LineWidth float64 `toml:"line_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scan: barcode.DefaultConfig(),
		Render: Render{
			AccentColor: imaging.DefaultAccentColor,
			LineWidth:   1,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the scan parameters and render settings.
func (c Config) Validate() error {
	if err := c.Scan.Validate(); err != nil {
		return err
	}
	if c.Render.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %g", c.Render.LineWidth)
	}
	return nil
}

// NewRenderer builds the renderer described by c writing into outputDir.
func (c Config) NewRenderer(outputDir string) (*imaging.Renderer, error) {
	r, err := imaging.NewRenderer(outputDir, c.Render.AccentColor)
	if err != nil {
		return nil, err
	}
	r.LineWidth = c.Render.LineWidth
	return r, nil
}
