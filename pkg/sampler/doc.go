// Package sampler composes six pkg/noise.NormalNoise fields into the
// climate sampler: given a seed and six noise-parameter sets, it evaluates
// a position's temperature, humidity, continentalness, erosion, and
// weirdness after applying a shift-noise-driven position jitter, producing
// a pkg/climate.TargetPoint a ParameterList can be queried with.
package sampler
