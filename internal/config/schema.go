package config

import "time"

// Config holds pagina configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server     ServerCfg     `mapstructure:"server" yaml:"server"`
	Pagination PaginationCfg `mapstructure:"pagination" yaml:"pagination"`
	Output     OutputCfg     `mapstructure:"output" yaml:"output"`
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// PaginationCfg configures label generation limits and sessions.
type PaginationCfg struct {
	DefaultPattern         string `mapstructure:"default_pattern" yaml:"default_pattern"`                   // Used when a request omits the pattern
	MaxLabels              int    `mapstructure:"max_labels" yaml:"max_labels"`                             // Labels per request (0 = unlimited)
	SessionTTLMinutes      int    `mapstructure:"session_ttl_minutes" yaml:"session_ttl_minutes"`           // Idle session lifetime (0 = forever)
	JanitorIntervalSeconds int    `mapstructure:"janitor_interval_seconds" yaml:"janitor_interval_seconds"` // How often idle sessions are evicted
}

// OutputCfg configures CLI output.
type OutputCfg struct {
	Format string `mapstructure:"format" yaml:"format"` // "yaml", "json" or "text"
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Pagination: PaginationCfg{
			DefaultPattern:         "1",
			MaxLabels:              10000,
			SessionTTLMinutes:      60,
			JanitorIntervalSeconds: 60,
		},
		Output: OutputCfg{
			Format: "yaml",
		},
	}
}

// SessionTTL returns the idle session lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Pagination.SessionTTLMinutes) * time.Minute
}

// JanitorInterval returns how often idle sessions are evicted.
func (c *Config) JanitorInterval() time.Duration {
	return time.Duration(c.Pagination.JanitorIntervalSeconds) * time.Second
}
