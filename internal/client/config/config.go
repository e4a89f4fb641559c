// Package config loads settings for the LangGPT terminal client: defaults,
// then an optional JSON file (-c/-config), then command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the LangGPT CLI.
//
// Fields:
//   - ServerURL: base URL of the LangGPT HTTP API.
//   - StateFile: local SQLite file keeping the session token and model key.
//   - RequestTimeout: upper bound for one API call; a translation makes two
//     model calls server side, so keep it generous.
//   - Direction: translation direction used when a command does not name one.
type Config struct {
	ServerURL      string
	StateFile      string
	RequestTimeout time.Duration
	Direction      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.StateFile = "langgpt.db"
	c.RequestTimeout = 5 * time.Minute
	c.Direction = "ko2ja"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags from args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
