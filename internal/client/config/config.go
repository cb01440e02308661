// Package config assembles runtime settings for the Ayuda client.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults -> environment (.env aware) -> JSON file (-c/-config) -> flags.
package config

import "time"

// Config holds runtime settings for the Ayuda CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Ayuda HTTP API.
//   - RequestTimeout: per-request deadline on gateway calls.
//   - SearchDebounce: quiet period before a course-search query is issued.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.SearchDebounce = 800 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
