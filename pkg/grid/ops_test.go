package grid

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"multinoise/pkg/climateerr"
	"multinoise/pkg/metrics"
	"multinoise/pkg/noise"
	"multinoise/pkg/sampler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBounds() Bounds {
	return Bounds{
		XFrom: 0, XTo: 2, XStep: 1,
		YFrom: 0, YTo: 1, YStep: 1,
		ZFrom: 0, ZTo: 2, ZStep: 1,
	}
}

func testParams() noise.NoiseParameters {
	return noise.NoiseParameters{FirstOctave: -2, Amplitudes: []float64{1.0, 1.0}}
}

func testSamplerOctaves() sampler.NoiseOctaves {
	params := testParams()
	return sampler.NoiseOctaves{
		Temperature:     params,
		Humidity:        params,
		Continentalness: params,
		Erosion:         params,
		Weirdness:       params,
		Shift:           params,
	}
}

func TestImprovedNoise_Deterministic(t *testing.T) {
	a, err := ImprovedNoise(context.Background(), 42, smallBounds(), nil, nil)
	require.NoError(t, err)
	b, err := ImprovedNoise(context.Background(), 42, smallBounds(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 4)
}

func TestPerlinNoise_PropagatesError(t *testing.T) {
	bad := noise.NoiseParameters{FirstOctave: -1, Amplitudes: []float64{1.0, 1.0, 1.0}}
	_, err := PerlinNoise(context.Background(), 42, bad, smallBounds(), nil, nil)
	assert.Error(t, err)
}

func TestPerlinNoise_Deterministic(t *testing.T) {
	a, err := PerlinNoise(context.Background(), 42, testParams(), smallBounds(), nil, nil)
	require.NoError(t, err)
	b, err := PerlinNoise(context.Background(), 42, testParams(), smallBounds(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalNoise_Deterministic(t *testing.T) {
	a, err := NormalNoise(context.Background(), 42, testParams(), smallBounds(), nil, nil)
	require.NoError(t, err)
	b, err := NormalNoise(context.Background(), 42, testParams(), smallBounds(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNoiseParameters_ConstructsPassthrough(t *testing.T) {
	p := NoiseParameters(-3, []float64{1.0, 2.0})
	assert.Equal(t, int32(-3), p.FirstOctave)
	assert.Equal(t, []float64{1.0, 2.0}, p.Amplitudes)
}

func testSpans() []BiomeSpan {
	return []BiomeSpan{
		{Biome: 2},
		{ContinentalnessMin: 1, ContinentalnessMax: 1, Biome: 5},
	}
}

func TestBiomeParameters_BuildsAndFinds(t *testing.T) {
	pl, err := BiomeParameters(testSpans(), nil, nil)
	require.NoError(t, err)

	biome, err := FindBiome(pl, []float64{0, 0, 0.6, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, int32(5), biome)
}

func TestBiomeParameters_PropagatesInvertedSpan(t *testing.T) {
	spans := []BiomeSpan{
		{TemperatureMin: 1, TemperatureMax: -1, Biome: 0},
	}
	_, err := BiomeParameters(spans, nil, nil)
	assert.True(t, errors.Is(err, climateerr.ErrParamInverted))
}

func TestFindBiome_WrongArity(t *testing.T) {
	pl, err := BiomeParameters(testSpans(), nil, nil)
	require.NoError(t, err)

	_, err = FindBiome(pl, []float64{0, 0, 0})
	assert.True(t, errors.Is(err, climateerr.ErrTargetArity))
}

func TestClimateSampler_BuildsSampler(t *testing.T) {
	s, err := ClimateSampler(1234, testSamplerOctaves(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestMultiNoise_DeterministicAndShaped(t *testing.T) {
	pl, err := BiomeParameters(testSpans(), nil, nil)
	require.NoError(t, err)
	s, err := ClimateSampler(1234, testSamplerOctaves(), nil, nil)
	require.NoError(t, err)

	b := Bounds{XFrom: 0, XTo: 3, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 3, ZStep: 1}
	a, err := MultiNoise(context.Background(), pl, s, b, nil, nil)
	require.NoError(t, err)
	c, err := MultiNoise(context.Background(), pl, s, b, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a, c)
	assert.Len(t, a, 9)
}

func TestClimateNoise_FlattensToSevenPerPoint(t *testing.T) {
	s, err := ClimateSampler(1234, testSamplerOctaves(), nil, nil)
	require.NoError(t, err)

	b := Bounds{XFrom: 0, XTo: 2, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 2, ZStep: 1}
	flat, err := ClimateNoise(context.Background(), s, b, nil, nil)
	require.NoError(t, err)

	assert.Len(t, flat, 4*7)
}

func TestClimateNoise_TruncatesFractionalGridCoordinates(t *testing.T) {
	s, err := ClimateSampler(1234, testSamplerOctaves(), nil, nil)
	require.NoError(t, err)

	fractional := Bounds{XFrom: 0.5, XTo: 1.5, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0.5, ZTo: 1.5, ZStep: 1}
	got, err := ClimateNoise(context.Background(), s, fractional, nil, nil)
	require.NoError(t, err)

	integral := Bounds{XFrom: 0, XTo: 1, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 1, ZStep: 1}
	want, err := ClimateNoise(context.Background(), s, integral, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, want, got, "a point at x=0.5 should sample the same as x=0, per the reference's i64 cast")
}

func TestMultiNoise_RecordsGridPointMetrics(t *testing.T) {
	m := metrics.New()
	pl, err := BiomeParameters(testSpans(), nil, m)
	require.NoError(t, err)
	s, err := ClimateSampler(1234, testSamplerOctaves(), nil, m)
	require.NoError(t, err)

	b := Bounds{XFrom: 0, XTo: 3, XStep: 1, YFrom: 0, YTo: 1, YStep: 1, ZFrom: 0, ZTo: 3, ZStep: 1}
	_, err = MultiNoise(context.Background(), pl, s, b, nil, m)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)
	body := rec.Body.String()

	assert.Contains(t, body, `multinoise_grid_points_total{operation="multi_noise"} 9`)
	assert.Contains(t, body, `multinoise_tree_builds_total{status="success"} 1`)
	assert.Contains(t, body, `multinoise_sample_calls_total{kind="climate"} 9`)
}
