// Package noiserand provides the two deterministic pseudo-random sources the
// noise and sampler packages build on: a 48-bit legacy linear-congruential
// generator (bit-identical to the host game's world seed PRNG) and a
// xoroshiro128 variant carried for completeness.
//
// Both sources implement Source, so callers that only need the shared draw
// surface (set_seed/consume/next_int/next_int_max/next_long/next_float/next_double)
// can depend on the interface rather than a concrete generator.
package noiserand
