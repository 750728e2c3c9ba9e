// Command worldgen loads a biome catalogue and an octave preset, builds a
// climate sampler, and bulk-evaluates multi-noise biome assignment or raw
// climate-noise vectors over a rectangular region.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"multinoise/pkg/catalog"
	"multinoise/pkg/config"
	"multinoise/pkg/grid"
	"multinoise/pkg/metrics"
	"multinoise/pkg/persistence"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Options holds the command-line flag values that control one worldgen run;
// environment-driven settings come from config.Config.
type Options struct {
	Seed              int64
	CatalogFile       string
	PresetFile        string
	Mode              string
	XFrom, XTo, XStep float64
	ZFrom, ZTo, ZStep float64
}

func parseFlags(args []string) (Options, error) {
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)
	opts := Options{}

	fs.Int64Var(&opts.Seed, "seed", 0, "sampler seed")
	fs.StringVar(&opts.CatalogFile, "catalog", "biomes.yaml", "biome catalogue file, relative to the configured catalog directory")
	fs.StringVar(&opts.PresetFile, "preset", "octaves.yaml", "noise octave preset file, relative to the configured catalog directory")
	fs.StringVar(&opts.Mode, "mode", "multi-noise", "evaluation mode: multi-noise or climate-noise")
	fs.Float64Var(&opts.XFrom, "x-from", 0, "inclusive lower bound of the x axis")
	fs.Float64Var(&opts.XTo, "x-to", 16, "exclusive upper bound of the x axis")
	fs.Float64Var(&opts.XStep, "x-step", 1, "x axis stride")
	fs.Float64Var(&opts.ZFrom, "z-from", 0, "inclusive lower bound of the z axis")
	fs.Float64Var(&opts.ZTo, "z-to", 16, "exclusive upper bound of the z axis")
	fs.Float64Var(&opts.ZStep, "z-step", 1, "z axis stride")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func bounds(opts Options) grid.Bounds {
	return grid.Bounds{
		XFrom: opts.XFrom, XTo: opts.XTo, XStep: opts.XStep,
		YFrom: 0, YTo: 1, YStep: 1,
		ZFrom: opts.ZFrom, ZTo: opts.ZTo, ZStep: opts.ZStep,
	}
}

// Run executes one worldgen evaluation and prints the resulting values to
// standard output.
func Run(ctx context.Context, opts Options, cfg *config.Config, logger *logrus.Logger) error {
	m := metrics.New()

	store, err := persistence.NewFileStore(cfg.GetCatalogDir())
	if err != nil {
		return fmt.Errorf("opening catalog directory: %w", err)
	}

	preset, err := catalog.LoadOctavePreset(ctx, store, opts.PresetFile)
	if err != nil {
		return fmt.Errorf("loading octave preset: %w", err)
	}

	s, err := grid.ClimateSampler(opts.Seed, preset.Octaves(), logger, m)
	if err != nil {
		return fmt.Errorf("building climate sampler: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.SamplesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.SamplesPerSecond), cfg.SampleBurst)
	}

	switch opts.Mode {
	case "multi-noise":
		biomeCatalog, err := catalog.LoadBiomeCatalog(ctx, store, opts.CatalogFile)
		if err != nil {
			return fmt.Errorf("loading biome catalogue: %w", err)
		}
		parameters, err := grid.BiomeParameters(biomeCatalog.Spans(), logger, m)
		if err != nil {
			return fmt.Errorf("building biome parameter list: %w", err)
		}

		biomes, err := grid.MultiNoise(ctx, parameters, s, bounds(opts), limiter, m)
		if err != nil {
			return fmt.Errorf("evaluating multi-noise grid: %w", err)
		}
		logger.WithField("points", len(biomes)).Info("multi-noise evaluation complete")
		fmt.Printf("%v\n", biomes)

	case "climate-noise":
		values, err := grid.ClimateNoise(ctx, s, bounds(opts), limiter, m)
		if err != nil {
			return fmt.Errorf("evaluating climate-noise grid: %w", err)
		}
		logger.WithField("values", len(values)).Info("climate-noise evaluation complete")
		fmt.Printf("%v\n", values)

	default:
		return fmt.Errorf("unknown mode %q: expected multi-noise or climate-noise", opts.Mode)
	}

	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldgen: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := Run(ctx, opts, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "worldgen: %v\n", err)
		os.Exit(1)
	}
}
