// Package cli implements the barcode-tiles command line.
//
// The command takes exactly two positional arguments, an input image and an
// output directory, scans the image tile by tile and writes a rendering of
// every tile that looks like a barcode into the output directory.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) switches to
// debug level, which reports the score of every tile that contains lines.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/barcode-tiles/internal/barcode"
	"github.com/ironsheep/barcode-tiles/internal/config"
	"github.com/ironsheep/barcode-tiles/internal/imaging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options collects the command line flags.
type options struct {
	configPath string
	verbose    bool
	workers    int
	tileSize   int
}

// Execute runs the command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the root command. Logs are written to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "barcode-tiles [flags] <input-image> <output-dir>",
		Short: "Find barcode-like regions in large images",
		Long: `barcode-tiles scans a grayscale image with overlapping square tiles and
scores each tile by how many detected straight lines share one orientation.
Tiles that look like barcodes are saved to the output directory as
img_<row>_<col>.png, rotated so their lines are upright.`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], args[1])
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("barcode-tiles %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVarP(&opts.workers, "workers", "w", barcode.DefaultWorkers, "number of tiles analysed concurrently")
	flags.IntVar(&opts.tileSize, "tile-size", barcode.DefaultTileSize, "side of the square sliding window in pixels")

	return root
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Scan.Workers = opts.workers
	}
	if cmd.Flags().Changed("tile-size") {
		cfg.Scan.TileSize = opts.tileSize
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run performs one scan of inputPath into outputDir.
func run(ctx context.Context, cfg config.Config, inputPath, outputDir string) error {
	logger := loggerFromContext(ctx)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	img, err := imaging.LoadGray(inputPath)
	if err != nil {
		return fmt.Errorf("could not load image at %s: %w", inputPath, err)
	}
	bounds := img.Bounds()
	logger.Info("loaded image", "path", inputPath, "width", bounds.Dx(), "height", bounds.Dy())

	renderer, err := cfg.NewRenderer(outputDir)
	if err != nil {
		return err
	}
	analyzer, err := barcode.NewAnalyzer(cfg.Scan, renderer, barcode.WithLogger(logger))
	if err != nil {
		return err
	}

	p := newProgress(logger)
	result, err := analyzer.Scan(ctx, img)
	if err != nil {
		return err
	}
	p.done("scan complete",
		"windows", result.Windows,
		"with_lines", result.WithLines,
		"accepted", len(result.Accepted))
	return nil
}
