// Package climateerr holds the sentinel errors returned by precondition
// violations across the noiserand, noise, climate, and sampler packages.
// Callers test for a specific kind with errors.Is; every constructor that
// detects one of these wraps it with fmt.Errorf("...: %w", ...) to add the
// offending values.
package climateerr

import "errors"

var (
	// ErrParamInverted is returned when a Param is constructed with min > max.
	ErrParamInverted = errors.New("climateerr: param min greater than max")

	// ErrEmptyTree is returned when a ParameterList is built from zero entries.
	ErrEmptyTree = errors.New("climateerr: parameter list has no entries")

	// ErrOctaveOutOfRange is returned when a perlin octave stack is given more
	// amplitudes than fit below octave zero, i.e. 1-firstOctave < len(amplitudes).
	ErrOctaveOutOfRange = errors.New("climateerr: octave amplitude count exceeds range implied by first octave")

	// ErrNonPositiveBound is returned when next_int_max is called with max <= 0.
	ErrNonPositiveBound = errors.New("climateerr: next_int_max bound must be positive")

	// ErrTargetArity is returned when find_biome is given a climate vector
	// whose length is not 6.
	ErrTargetArity = errors.New("climateerr: target vector must have exactly 6 components")
)
