// Package catalog persists biome catalogues and noise-octave presets as
// YAML files. Loads and saves go through pkg/persistence for atomic writes
// and pkg/integration for retry plus circuit-breaker protected file access,
// the way the rest of this module handles on-disk state.
package catalog
