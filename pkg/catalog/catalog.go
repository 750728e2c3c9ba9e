package catalog

import (
	"context"

	"multinoise/pkg/grid"
	"multinoise/pkg/integration"
	"multinoise/pkg/noise"
	"multinoise/pkg/persistence"
	"multinoise/pkg/sampler"
)

// BiomeEntry is one catalogue row: a six-axis climate span plus the biome
// id it resolves to.
type BiomeEntry struct {
	Biome              int32   `yaml:"biome"`
	TemperatureMin     float64 `yaml:"temperature_min"`
	TemperatureMax     float64 `yaml:"temperature_max"`
	HumidityMin        float64 `yaml:"humidity_min"`
	HumidityMax        float64 `yaml:"humidity_max"`
	ContinentalnessMin float64 `yaml:"continentalness_min"`
	ContinentalnessMax float64 `yaml:"continentalness_max"`
	ErosionMin         float64 `yaml:"erosion_min"`
	ErosionMax         float64 `yaml:"erosion_max"`
	WeirdnessMin       float64 `yaml:"weirdness_min"`
	WeirdnessMax       float64 `yaml:"weirdness_max"`
	DepthMin           float64 `yaml:"depth_min"`
	DepthMax           float64 `yaml:"depth_max"`
	Offset             float64 `yaml:"offset"`
}

// BiomeCatalog is a named, ordered set of BiomeEntry rows persisted as one
// YAML document.
type BiomeCatalog struct {
	Name    string       `yaml:"name"`
	Entries []BiomeEntry `yaml:"entries"`
}

// Spans converts the catalogue to the grid.BiomeSpan slice BiomeParameters
// consumes.
func (c *BiomeCatalog) Spans() []grid.BiomeSpan {
	spans := make([]grid.BiomeSpan, len(c.Entries))
	for i, e := range c.Entries {
		spans[i] = grid.BiomeSpan{
			TemperatureMin:     e.TemperatureMin,
			TemperatureMax:     e.TemperatureMax,
			HumidityMin:        e.HumidityMin,
			HumidityMax:        e.HumidityMax,
			ContinentalnessMin: e.ContinentalnessMin,
			ContinentalnessMax: e.ContinentalnessMax,
			ErosionMin:         e.ErosionMin,
			ErosionMax:         e.ErosionMax,
			WeirdnessMin:       e.WeirdnessMin,
			WeirdnessMax:       e.WeirdnessMax,
			DepthMin:           e.DepthMin,
			DepthMax:           e.DepthMax,
			Offset:             e.Offset,
			Biome:              e.Biome,
		}
	}
	return spans
}

// LoadBiomeCatalog reads and deserializes a BiomeCatalog from filename
// within store, through the file system resilient executor.
func LoadBiomeCatalog(ctx context.Context, store *persistence.FileStore, filename string) (*BiomeCatalog, error) {
	var c BiomeCatalog
	err := integration.ExecuteFileSystemOperation(ctx, func(context.Context) error {
		return store.Load(filename, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveBiomeCatalog serializes c to filename within store, through the file
// system resilient executor.
func SaveBiomeCatalog(ctx context.Context, store *persistence.FileStore, filename string, c *BiomeCatalog) error {
	return integration.ExecuteFileSystemOperation(ctx, func(context.Context) error {
		return store.Save(filename, c)
	})
}

// NoisePreset is one named octave stack, serializable alongside a
// noise.NoiseParameters value.
type NoisePreset struct {
	FirstOctave int32     `yaml:"first_octave"`
	Amplitudes  []float64 `yaml:"amplitudes"`
}

// Parameters converts the preset to a noise.NoiseParameters value.
func (p NoisePreset) Parameters() noise.NoiseParameters {
	return noise.NoiseParameters{FirstOctave: p.FirstOctave, Amplitudes: p.Amplitudes}
}

// OctavePreset is the six named octave stacks a sampler.Sampler needs, one
// per climate channel, persisted as one YAML document.
type OctavePreset struct {
	Name            string      `yaml:"name"`
	Temperature     NoisePreset `yaml:"temperature"`
	Humidity        NoisePreset `yaml:"humidity"`
	Continentalness NoisePreset `yaml:"continentalness"`
	Erosion         NoisePreset `yaml:"erosion"`
	Weirdness       NoisePreset `yaml:"weirdness"`
	Shift           NoisePreset `yaml:"shift"`
}

// Octaves converts the preset to the sampler.NoiseOctaves value
// sampler.New consumes.
func (p OctavePreset) Octaves() sampler.NoiseOctaves {
	return sampler.NoiseOctaves{
		Temperature:     p.Temperature.Parameters(),
		Humidity:        p.Humidity.Parameters(),
		Continentalness: p.Continentalness.Parameters(),
		Erosion:         p.Erosion.Parameters(),
		Weirdness:       p.Weirdness.Parameters(),
		Shift:           p.Shift.Parameters(),
	}
}

// LoadOctavePreset reads and deserializes an OctavePreset from filename
// within store, through the config-loader resilient executor.
func LoadOctavePreset(ctx context.Context, store *persistence.FileStore, filename string) (*OctavePreset, error) {
	var p OctavePreset
	err := integration.ExecuteConfigOperation(ctx, func(context.Context) error {
		return store.Load(filename, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveOctavePreset serializes p to filename within store, through the
// config-loader resilient executor.
func SaveOctavePreset(ctx context.Context, store *persistence.FileStore, filename string, p *OctavePreset) error {
	return integration.ExecuteConfigOperation(ctx, func(context.Context) error {
		return store.Save(filename, p)
	})
}
