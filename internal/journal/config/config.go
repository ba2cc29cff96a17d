// Package config loads runtime settings for the journal CLI.
package config

// Config holds runtime settings for the journal.
//
// Fields:
//   - DatabasePath: filesystem path (or sqlite DSN) of the local journal DB.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "journal.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
