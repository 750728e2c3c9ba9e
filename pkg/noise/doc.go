// Package noise implements the bit-exact gradient noise stack this module
// reproduces: one octave of 3-D Perlin "improved noise" over a seeded
// permutation table, an octave-stacked PerlinNoise built from it, and
// NormalNoise, the sum of two independently seeded Perlin stacks sampled at
// a fixed frequency ratio that the climate sampler uses for each of its six
// channels.
package noise
