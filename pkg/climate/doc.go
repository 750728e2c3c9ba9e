// Package climate implements the 7-D quantized climate parameter space and
// the nearest-region tree a Sampler resolves a position's climate vector
// against: Param (a closed quantized interval), ParamPoint and TargetPoint
// (the catalogue and query shapes over that space), and ParameterList, a
// bulk-loaded spatial tree returning the biome of the nearest parameter box
// under squared distance.
package climate
