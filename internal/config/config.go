// internal/config/config.go
package config

import (
	"fmt"
	"time"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = ".wardleygo.hcl"

// Config is the resolved tool configuration.
type Config struct {
	Log       Log
	Output    Output
	Links     Links
	Discovery Discovery
	Watch     Watch
	Publish   Publish
}

// Log configures the slog handler.
type Log struct {
	Level  string
	Format string
}

// Output configures how results are rendered.
type Output struct {
	Format string
	Color  bool
}

// Links configures the link classifier.
type Links struct {
	ShowLinkedEvolved bool
}

// Discovery configures which files a directory argument expands to.
type Discovery struct {
	Patterns []string
	Exclude  []string
}

// Watch configures watch mode.
type Watch struct {
	Debounce  time.Duration
	CacheSize int
}

// Publish configures the optional socket.io publisher used by watch mode.
type Publish struct {
	URL       string
	Path      string
	Namespace string
	Event     string
	Insecure  bool
	Timeout   time.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    Log{Level: "info", Format: "text"},
		Output: Output{Format: "json", Color: true},
		Discovery: Discovery{
			Patterns: []string{"**/*.owm", "**/*.wm"},
			Exclude:  []string{"**/node_modules/**", "**/.git/**"},
		},
		Watch: Watch{Debounce: 200 * time.Millisecond, CacheSize: 128},
		Publish: Publish{
			Path:      "/socket.io/",
			Namespace: "/",
			Event:     "map",
			Timeout:   15 * time.Second,
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.Log.Format)
	}
	if c.Output.Format != "json" && c.Output.Format != "yaml" {
		return fmt.Errorf("invalid output format %q: must be 'json' or 'yaml'", c.Output.Format)
	}
	if len(c.Discovery.Patterns) == 0 {
		return fmt.Errorf("discovery needs at least one pattern")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	if c.Watch.CacheSize <= 0 {
		return fmt.Errorf("watch cache_size must be positive, got %d", c.Watch.CacheSize)
	}
	return nil
}
