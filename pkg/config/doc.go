// Package config provides environment-variable configuration for the
// multinoise CLI and catalog loader: where catalogs live on disk, retry
// tuning values (exposed through GetRetryConfig, not used by catalog loads),
// and how a bulk grid evaluation is rate-limited.
//
// Load reads defaults from the environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
package config
