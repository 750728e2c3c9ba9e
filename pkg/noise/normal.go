package noise

import (
	"math"

	"multinoise/pkg/noiserand"
)

// normalNoiseInputFactor is the frequency ratio NormalNoise's second Perlin
// stack samples at. It is a fixed design constant chosen so the two stacks
// have a near-coprime frequency relationship; implementations must use this
// literal value rather than an approximation.
const normalNoiseInputFactor = 1.0181268882175227

// NormalNoise sums two independently seeded PerlinNoise stacks built from
// the same source and the same parameters, sampled at a fixed frequency
// ratio and normalized to roughly unit amplitude.
type NormalNoise struct {
	first, second *PerlinNoise
	valueFactor   float64
}

// NewNormalNoise builds both Perlin stacks sequentially from source (first,
// then second), so the two consume disjoint, deterministic draw ranges.
func NewNormalNoise(source noiserand.Source, params NoiseParameters) (*NormalNoise, error) {
	first, err := NewPerlinNoise(source, params)
	if err != nil {
		return nil, err
	}
	second, err := NewPerlinNoise(source, params)
	if err != nil {
		return nil, err
	}

	minIdx := int32(math.MaxInt32)
	maxIdx := int32(math.MinInt32)
	for i, a := range params.Amplitudes {
		if a != 0.0 {
			if int32(i) < minIdx {
				minIdx = int32(i)
			}
			if int32(i) > maxIdx {
				maxIdx = int32(i)
			}
		}
	}

	return &NormalNoise{
		first:       first,
		second:      second,
		valueFactor: (1.0 / 6.0) / (0.1 * (1.0 + 1.0/float64(maxIdx-minIdx+1))),
	}, nil
}

// Sample evaluates the summed field at (x,y,z). Only the second stack's
// input is scaled by normalNoiseInputFactor; the first samples at the raw
// coordinates.
func (nn *NormalNoise) Sample(x, y, z float64) float64 {
	first := nn.first.Sample(x, y, z, 0, 0, false)
	second := nn.second.Sample(x*normalNoiseInputFactor, y*normalNoiseInputFactor, z*normalNoiseInputFactor, 0, 0, false)
	return (first + second) * nn.valueFactor
}
