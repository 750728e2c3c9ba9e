package noise

import (
	"fmt"
	"math"

	"multinoise/pkg/climateerr"
	"multinoise/pkg/noiserand"
)

// NoiseParameters is the per-channel octave configuration a Sampler loads:
// the lowest (most negative) octave index present, and one amplitude per
// octave starting at that index.
type NoiseParameters struct {
	FirstOctave int32
	Amplitudes  []float64
}

// octave pairs an amplitude with the ImprovedNoise built for it. A nil
// *octave in PerlinNoise.levels means the octave's amplitude was zero or
// absent; its 262
// construction draws were skipped explicitly to keep the PRNG position
// aligned with a populated stack.
type octave struct {
	amplitude float64
	noise     *ImprovedNoise
}

const octaveDrawsPerLevel = 262

// PerlinNoise stacks octaves of ImprovedNoise at doubling frequencies.
type PerlinNoise struct {
	levels          []*octave
	lowestFreqInput float64
	lowestFreqValue float64
}

// NewPerlinNoise builds a stack from params, drawing from source. Every
// level between 0 and -FirstOctave consumes exactly octaveDrawsPerLevel
// PRNG draws, whether or not its amplitude is populated, so the source's
// position after construction is independent of which octaves are active.
func NewPerlinNoise(source noiserand.Source, params NoiseParameters) (*PerlinNoise, error) {
	n := int32(len(params.Amplitudes))
	if 1-params.FirstOctave < n {
		return nil, fmt.Errorf("perlin noise: first octave %d with %d amplitudes: %w", params.FirstOctave, n, climateerr.ErrOctaveOutOfRange)
	}

	levelCount := -params.FirstOctave + 1
	levels := make([]*octave, levelCount)
	for i := levelCount - 1; i >= 0; i-- {
		if i < n && params.Amplitudes[i] != 0.0 {
			levels[i] = &octave{
				amplitude: params.Amplitudes[i],
				noise:     NewImprovedNoise(source),
			}
		} else {
			source.Consume(octaveDrawsPerLevel)
		}
	}

	return &PerlinNoise{
		levels:          levels,
		lowestFreqInput: math.Pow(2, float64(params.FirstOctave)),
		lowestFreqValue: math.Pow(2, float64(n-1)) / (math.Pow(2, float64(n)) - 1.0),
	}, nil
}

// Sample evaluates the stacked octaves at (x,y,z). When fixY is true, each
// level samples at its own negated y origin offset instead of wrap(y *
// inputFactor); the reference uses this for 2-D-style sampling where y
// carries no spatial meaning.
func (pn *PerlinNoise) Sample(x, y, z, yScale, yLimit float64, fixY bool) float64 {
	value := 0.0
	inputFactor := pn.lowestFreqInput
	valueFactor := pn.lowestFreqValue

	for _, level := range pn.levels {
		if level != nil {
			yInput := wrap(y * inputFactor)
			if fixY {
				yInput = -level.noise.yo
			}
			noiseValue := level.noise.Sample(
				wrap(x*inputFactor),
				yInput,
				wrap(z*inputFactor),
				yScale*inputFactor,
				yLimit*inputFactor,
			)
			value += level.amplitude * valueFactor * noiseValue
		}
		inputFactor *= 2.0
		valueFactor /= 2.0
	}

	return value
}
