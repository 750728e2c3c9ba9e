package sampler

import (
	"time"

	"multinoise/pkg/climate"
	"multinoise/pkg/metrics"
	"multinoise/pkg/noise"
	"multinoise/pkg/noiserand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NoiseOctaves holds the per-channel octave configuration a Sampler is
// built from, in fixed construction order.
type NoiseOctaves struct {
	Temperature     noise.NoiseParameters
	Humidity        noise.NoiseParameters
	Continentalness noise.NoiseParameters
	Erosion         noise.NoiseParameters
	Weirdness       noise.NoiseParameters
	Shift           noise.NoiseParameters
}

// Sampler evaluates six normal-noise fields with a shift-noise-driven
// position jitter and produces a climate.TargetPoint for a given position.
type Sampler struct {
	temperature, humidity, continentalness, erosion, weirdness, shift *noise.NormalNoise
	id                                                                 uuid.UUID
	metrics                                                            *metrics.Metrics
}

// New builds a Sampler from seed and octaves: six NormalNoise fields, each
// seeded from a fresh LegacySource at seed+k for k=0..5, in the order
// temperature, humidity, continentalness, erosion, weirdness, shift. m may
// be nil, in which case per-sample metrics are simply not recorded.
func New(seed int64, octaves NoiseOctaves, logger *logrus.Logger, m *metrics.Metrics) (*Sampler, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	fields := []noise.NoiseParameters{
		octaves.Temperature, octaves.Humidity, octaves.Continentalness,
		octaves.Erosion, octaves.Weirdness, octaves.Shift,
	}

	built := make([]*noise.NormalNoise, len(fields))
	for k, params := range fields {
		nn, err := noise.NewNormalNoise(noiserand.NewLegacySource(seed+int64(k)), params)
		if err != nil {
			return nil, err
		}
		built[k] = nn
	}

	id := uuid.New()
	logger.WithFields(logrus.Fields{
		"sampler_id": id,
		"seed":       seed,
	}).Debug("built climate sampler")

	return &Sampler{
		temperature:     built[0],
		humidity:        built[1],
		continentalness: built[2],
		erosion:         built[3],
		weirdness:       built[4],
		shift:           built[5],
		id:              id,
		metrics:         m,
	}, nil
}

// ID returns the construction-time correlation id for this sampler's log
// entries.
func (s *Sampler) ID() uuid.UUID {
	return s.id
}

// Target evaluates the climate at integer world position (x, z); it takes
// no y coordinate, since no climate channel depends on height. The depth
// channel is fixed at zero; no terrain-shaping step is implemented.
func (s *Sampler) Target(x, z float64) climate.TargetPoint {
	start := time.Now()

	jx := s.shift.Sample(x, 0, z) * 4
	jz := s.shift.Sample(z, x, 0) * 4

	xx := x + jx
	zz := z + jz

	tp := climate.NewTargetPoint(
		s.temperature.Sample(xx, 0, zz),
		s.humidity.Sample(xx, 0, zz),
		s.continentalness.Sample(xx, 0, zz),
		s.erosion.Sample(xx, 0, zz),
		s.weirdness.Sample(xx, 0, zz),
		0,
	)

	s.metrics.RecordSample("climate", time.Since(start))
	return tp
}
