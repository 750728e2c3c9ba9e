// Package grid provides the public, grid-oriented entry points over the
// noise, climate, and sampler packages: dense rectangular evaluations of
// improved/perlin/normal noise, biome catalogue construction, climate
// sampler construction, single-point biome lookup, and bulk multi-noise /
// climate-noise grid evaluation.
//
// Bulk evaluations accept an optional *rate.Limiter so a caller such as
// cmd/worldgen can bound how many samples per second a large grid request
// consumes.
package grid
