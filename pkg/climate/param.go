package climate

import (
	"fmt"

	"multinoise/pkg/climateerr"
)

// quantizeScale fixed-point scales float climate values before truncation
// to int64, giving exact, branch-free interval arithmetic downstream.
const quantizeScale = 10000.0

// spaceAxes is the dimensionality of the climate parameter space: the six
// climate channels plus the offset axis.
const spaceAxes = 7

func quantize(x float64) int64 {
	return int64(x * quantizeScale)
}

func unquantize(x int64) float64 {
	return float64(x) / quantizeScale
}

// Param is a closed interval of quantized climate values. A point value is
// represented as a degenerate interval with Min == Max.
type Param struct {
	Min, Max int64
}

// NewParam validates min <= max on already-quantized bounds.
func NewParam(min, max int64) (Param, error) {
	if min > max {
		return Param{}, fmt.Errorf("param [%d, %d]: %w", min, max, climateerr.ErrParamInverted)
	}
	return Param{Min: min, Max: max}, nil
}

// ParamPointValue builds a degenerate (point) Param from a raw float value.
func ParamPointValue(v float64) Param {
	p, _ := NewParam(quantize(v), quantize(v))
	return p
}

// ParamSpan builds a Param from raw float bounds, quantizing both ends.
// Returns ErrParamInverted if min > max after quantization.
func ParamSpan(min, max float64) (Param, error) {
	return NewParam(quantize(min), quantize(max))
}

// distance is the unsigned axis-aligned distance from x to the interval:
// x-max when x is above the interval, min-x when below, zero inside.
func (p Param) distance(x int64) int64 {
	diffMax := x - p.Max
	diffMin := p.Min - x
	if diffMax > 0 {
		return diffMax
	}
	if diffMin > 0 {
		return diffMin
	}
	return 0
}

// union returns the smallest interval covering both p and other.
func (p Param) union(other Param) Param {
	min := p.Min
	if other.Min < min {
		min = other.Min
	}
	max := p.Max
	if other.Max > max {
		max = other.Max
	}
	return Param{Min: min, Max: max}
}

// ParamPoint is a catalogue entry's 7-D box: six climate-axis intervals plus
// a degenerate offset interval.
type ParamPoint struct {
	Temperature, Humidity, Continentalness, Erosion, Weirdness, Depth Param
	offset                                                            int64
}

// NewParamPoint builds a ParamPoint from six axis intervals and a raw
// offset value.
func NewParamPoint(temperature, humidity, continentalness, erosion, weirdness, depth Param, offset float64) ParamPoint {
	return ParamPoint{
		Temperature:     temperature,
		Humidity:        humidity,
		Continentalness: continentalness,
		Erosion:         erosion,
		Weirdness:       weirdness,
		Depth:           depth,
		offset:          quantize(offset),
	}
}

// space returns the point's seven intervals in fixed axis order:
// temperature, humidity, continentalness, erosion, weirdness, depth, offset.
func (pp ParamPoint) space() [spaceAxes]Param {
	return [spaceAxes]Param{
		pp.Temperature, pp.Humidity, pp.Continentalness,
		pp.Erosion, pp.Weirdness, pp.Depth,
		{Min: pp.offset, Max: pp.offset},
	}
}

// TargetPoint is a query position's quantized climate vector.
type TargetPoint struct {
	Temperature, Humidity, Continentalness, Erosion, Weirdness, Depth int64
}

// NewTargetPoint quantizes six raw climate values into a TargetPoint.
func NewTargetPoint(temperature, humidity, continentalness, erosion, weirdness, depth float64) TargetPoint {
	return TargetPoint{
		Temperature:     quantize(temperature),
		Humidity:        quantize(humidity),
		Continentalness: quantize(continentalness),
		Erosion:         quantize(erosion),
		Weirdness:       quantize(weirdness),
		Depth:           quantize(depth),
	}
}

// space returns the six climate values with a trailing zero on the offset
// axis, matching ParamPoint's axis order.
func (tp TargetPoint) space() [spaceAxes]int64 {
	return [spaceAxes]int64{
		tp.Temperature, tp.Humidity, tp.Continentalness,
		tp.Erosion, tp.Weirdness, tp.Depth, 0,
	}
}

// Vec unquantizes all seven axes (including the always-zero offset axis)
// back to floats, in space() order.
func (tp TargetPoint) Vec() []float64 {
	s := tp.space()
	out := make([]float64, spaceAxes)
	for i, v := range s {
		out[i] = unquantize(v)
	}
	return out
}
