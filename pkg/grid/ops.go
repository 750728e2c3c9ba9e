package grid

import (
	"context"
	"fmt"

	"multinoise/pkg/climate"
	"multinoise/pkg/climateerr"
	"multinoise/pkg/metrics"
	"multinoise/pkg/noise"
	"multinoise/pkg/noiserand"
	"multinoise/pkg/sampler"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ImprovedNoise builds one improved-noise octave from seed and evaluates it
// densely over b.
func ImprovedNoise(ctx context.Context, seed int64, b Bounds, limiter *rate.Limiter, m *metrics.Metrics) ([]float64, error) {
	n := noise.NewImprovedNoise(noiserand.NewLegacySource(seed))
	return IterateLimited(ctx, limiter, b, m, "improved_noise", func(x, y, z float64) float64 {
		return n.Sample(x, y, z, 0, 0)
	})
}

// PerlinNoise builds a perlin octave stack from seed and params and
// evaluates it densely over b.
func PerlinNoise(ctx context.Context, seed int64, params noise.NoiseParameters, b Bounds, limiter *rate.Limiter, m *metrics.Metrics) ([]float64, error) {
	pn, err := noise.NewPerlinNoise(noiserand.NewLegacySource(seed), params)
	if err != nil {
		return nil, err
	}
	return IterateLimited(ctx, limiter, b, m, "perlin_noise", func(x, y, z float64) float64 {
		return pn.Sample(x, y, z, 0, 0, false)
	})
}

// NormalNoise builds a normal-noise field from seed and params and
// evaluates it densely over b.
func NormalNoise(ctx context.Context, seed int64, params noise.NoiseParameters, b Bounds, limiter *rate.Limiter, m *metrics.Metrics) ([]float64, error) {
	nn, err := noise.NewNormalNoise(noiserand.NewLegacySource(seed), params)
	if err != nil {
		return nil, err
	}
	return IterateLimited(ctx, limiter, b, m, "normal_noise", func(x, y, z float64) float64 {
		return nn.Sample(x, y, z)
	})
}

// NoiseParameters is a thin constructor kept for parity with the reference
// library's public surface; callers may build noise.NoiseParameters
// directly.
func NoiseParameters(firstOctave int32, amplitudes []float64) noise.NoiseParameters {
	return noise.NoiseParameters{FirstOctave: firstOctave, Amplitudes: amplitudes}
}

// BiomeSpan is one catalogue entry: a min/max span per climate axis, a
// point offset, and the biome id that region resolves to.
type BiomeSpan struct {
	TemperatureMin, TemperatureMax         float64
	HumidityMin, HumidityMax               float64
	ContinentalnessMin, ContinentalnessMax float64
	ErosionMin, ErosionMax                 float64
	WeirdnessMin, WeirdnessMax             float64
	DepthMin, DepthMax                     float64
	Offset                                 float64
	Biome                                  int32
}

// BiomeParameters builds a ParameterList from a catalogue of BiomeSpans.
func BiomeParameters(spans []BiomeSpan, logger *logrus.Logger, m *metrics.Metrics) (*climate.ParameterList, error) {
	entries := make([]climate.Entry, len(spans))
	for i, s := range spans {
		temperature, err := climate.ParamSpan(s.TemperatureMin, s.TemperatureMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d temperature: %w", i, err)
		}
		humidity, err := climate.ParamSpan(s.HumidityMin, s.HumidityMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d humidity: %w", i, err)
		}
		continentalness, err := climate.ParamSpan(s.ContinentalnessMin, s.ContinentalnessMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d continentalness: %w", i, err)
		}
		erosion, err := climate.ParamSpan(s.ErosionMin, s.ErosionMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d erosion: %w", i, err)
		}
		weirdness, err := climate.ParamSpan(s.WeirdnessMin, s.WeirdnessMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d weirdness: %w", i, err)
		}
		depth, err := climate.ParamSpan(s.DepthMin, s.DepthMax)
		if err != nil {
			return nil, fmt.Errorf("biome parameters entry %d depth: %w", i, err)
		}

		entries[i] = climate.Entry{
			Point: climate.NewParamPoint(temperature, humidity, continentalness, erosion, weirdness, depth, s.Offset),
			Biome: s.Biome,
		}
	}

	return climate.NewParameterList(entries, logger, m)
}

// ClimateSampler builds a Sampler from a seed and a NoiseOctaves set.
func ClimateSampler(seed int64, octaves sampler.NoiseOctaves, logger *logrus.Logger, m *metrics.Metrics) (*sampler.Sampler, error) {
	return sampler.New(seed, octaves, logger, m)
}

// FindBiome resolves the biome at a six-component climate vector
// (temperature, humidity, continentalness, erosion, weirdness, depth).
func FindBiome(parameters *climate.ParameterList, target []float64) (int32, error) {
	if len(target) != 6 {
		return 0, fmt.Errorf("find_biome: got %d components: %w", len(target), climateerr.ErrTargetArity)
	}
	tp := climate.NewTargetPoint(target[0], target[1], target[2], target[3], target[4], target[5])
	return parameters.Find(tp), nil
}

// MultiNoise evaluates the biome at every lattice point in b. The sampler
// operates on integer world coordinates, so each grid coordinate is
// truncated toward zero before sampling, matching the reference
// implementation's i64 cast.
func MultiNoise(ctx context.Context, parameters *climate.ParameterList, s *sampler.Sampler, b Bounds, limiter *rate.Limiter, m *metrics.Metrics) ([]int32, error) {
	return IterateLimited(ctx, limiter, b, m, "multi_noise", func(x, _, z float64) int32 {
		return parameters.Find(s.Target(float64(int64(x)), float64(int64(z))))
	})
}

// ClimateNoise evaluates the seven-component climate vector at every
// lattice point in b and flattens the result row-major. Grid coordinates
// are truncated toward zero before sampling, matching the reference
// implementation's i64 cast.
func ClimateNoise(ctx context.Context, s *sampler.Sampler, b Bounds, limiter *rate.Limiter, m *metrics.Metrics) ([]float64, error) {
	rows, err := IterateLimited(ctx, limiter, b, m, "climate_noise", func(x, _, z float64) []float64 {
		return s.Target(float64(int64(x)), float64(int64(z))).Vec()
	})
	if err != nil {
		return nil, err
	}

	flat := make([]float64, 0, len(rows)*7)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat, nil
}
