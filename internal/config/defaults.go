package config

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// ErrInvalidKey is returned when a config key contains invalid characters.
var ErrInvalidKey = errors.New("invalid config key")

// Entry represents a single configuration entry.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// ValidateKey checks if a config key contains only allowed characters.
// Valid keys contain: letters, digits, dots, underscores, and hyphens.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for i, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKey, r, i)
		}
	}
	// Don't allow keys starting or ending with dots
	if key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: key cannot start or end with a dot", ErrInvalidKey)
	}
	return nil
}

// DefaultEntries returns the default configuration entries.
func DefaultEntries() []Entry {
	return Entries(DefaultConfig())
}

// Entries flattens cfg into described key/value entries, sorted by key.
func Entries(cfg *Config) []Entry {
	entries := []Entry{
		// ===================
		// Server
		// ===================
		{
			Key:         "server.host",
			Value:       cfg.Server.Host,
			Description: "Interface the HTTP server binds to",
		},
		{
			Key:         "server.port",
			Value:       cfg.Server.Port,
			Description: "Port the HTTP server listens on",
		},

		// ===================
		// Pagination
		// ===================
		{
			Key:         "pagination.default_pattern",
			Value:       cfg.Pagination.DefaultPattern,
			Description: "Pattern used when a request does not name one",
		},
		{
			Key:         "pagination.max_labels",
			Value:       cfg.Pagination.MaxLabels,
			Description: "Maximum labels generated per request (0 = unlimited)",
		},
		{
			Key:         "pagination.session_ttl_minutes",
			Value:       cfg.Pagination.SessionTTLMinutes,
			Description: "Minutes an idle labelling session is kept (0 = forever)",
		},
		{
			Key:         "pagination.janitor_interval_seconds",
			Value:       cfg.Pagination.JanitorIntervalSeconds,
			Description: "Seconds between idle session sweeps",
		},

		// ===================
		// Output
		// ===================
		{
			Key:         "output.format",
			Value:       cfg.Output.Format,
			Description: "CLI output format: yaml, json or text",
		},
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Lookup returns the entry for key in cfg.
func Lookup(cfg *Config, key string) (*Entry, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	for _, entry := range Entries(cfg) {
		if entry.Key == key {
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("%w for key %q", ErrNoDefault, key)
}

// GetDefault returns the default value for a config key.
// Returns nil if no default exists for the key.
func GetDefault(key string) *Entry {
	for _, entry := range DefaultEntries() {
		if entry.Key == key {
			return &entry
		}
	}
	return nil
}
