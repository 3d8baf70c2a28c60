// Command trimesh samples random points, triangulates them, builds the
// dual Voronoi diagram, and rasterizes both to a PNG — the Go analogue
// of the reference application's launcher + application crates.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meshkit/trimesh/config"
	"github.com/meshkit/trimesh/delaunay"
	"github.com/meshkit/trimesh/render"
	"github.com/meshkit/trimesh/sampling"
	"github.com/meshkit/trimesh/voronoi"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		seed       uint64
		number     int
		outputPath string
		width      int
		height     int
		parallel   bool
	)

	cmd := &cobra.Command{
		Use:   "trimesh",
		Short: "Sample random points and render their Delaunay/Voronoi diagrams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, config.WithSeed(seed))
			}
			if cmd.Flags().Changed("number") {
				opts = append(opts, config.WithNumber(number))
			}
			if cmd.Flags().Changed("output") {
				opts = append(opts, config.WithOutputPath(outputPath))
			}
			return run(configPath, width, height, parallel, opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML settings file (optional)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "sampling seed (0 picks one at random)")
	cmd.Flags().IntVar(&number, "number", 0, "number of points to sample")
	cmd.Flags().StringVar(&outputPath, "output", "", "PNG output path")
	cmd.Flags().IntVar(&width, "width", 1024, "rendered image width")
	cmd.Flags().IntVar(&height, "height", 1024, "rendered image height")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "shard seed-triangle selection across goroutines")

	return cmd
}

func run(configPath string, width, height int, parallel bool, opts []config.Option) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	settings, err := config.Load(configPath, opts...)
	if err != nil {
		logger.Error("failed to load settings", zap.Error(err))
		return err
	}
	logger.Info("starting", zap.Uint64("seed", settings.Seed), zap.Int("number", settings.Number))

	var buildOpts []delaunay.Option
	if parallel {
		buildOpts = append(buildOpts, delaunay.WithParallel(true))
	}

	d, err := triangulateWithRetry(logger, settings, buildOpts)
	if err != nil {
		return err
	}

	v, err := voronoi.FromDelaunay(d)
	if err != nil {
		logger.Error("failed to build voronoi dual", zap.Error(err))
		return err
	}

	if len(d.SkippedInteriorPoints) > 0 {
		logger.Warn("some sampled points were never placed",
			zap.Ints("indices", d.SkippedInteriorPoints))
	}

	logger.Info("writing image", zap.String("path", settings.OutputPath))
	if err := render.Save(settings.OutputPath, width, height, d, v); err != nil {
		logger.Error("failed to write image", zap.Error(err))
		return err
	}

	logger.Info("done")
	return nil
}

// triangulateWithRetry resamples with a freshly advanced seed whenever
// the draw is degenerate, mirroring the reference application's retry
// loop around Delaunay construction.
func triangulateWithRetry(logger *zap.Logger, settings *config.Settings, opts []delaunay.Option) (*delaunay.Delaunay, error) {
	seed := settings.Seed
	for {
		points, err := sampling.Generate(seed, settings.Number)
		if err != nil {
			return nil, err
		}

		d, err := delaunay.Build(points, opts...)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, delaunay.ErrDegenerateInput) {
			return nil, err
		}

		logger.Warn("triangulation failed, resampling", zap.Uint64("seed", seed), zap.Error(err))
		seed++
	}
}
