package config

import (
	"fmt"
	"slices"
	"strings"
)

const maxWorkers = 256

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("locale must not be empty")
	}
	if err := c.Denorm.validate(); err != nil {
		return fmt.Errorf("denorm: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (d *DenormConfig) validate() error {
	if d.Workers < 1 || d.Workers > maxWorkers {
		return fmt.Errorf("workers must be in 1..%d (got %d)", maxWorkers, d.Workers)
	}
	if len(d.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range d.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", logLevels, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", logFormats, l.Format)
	}
	return nil
}
