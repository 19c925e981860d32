package config

import (
	"fmt"
)

var validLogFormats = map[string]bool{"console": true, "json": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks semantic constraints on a normalized config.
func (c *Config) Validate() error {
	if c.Paths.DataDir == "" {
		return fmt.Errorf("config: paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return fmt.Errorf("config: paths.log_dir must be set")
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("config: logging.format %q is not one of console, json", c.Logging.Format)
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("config: logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if len(c.Library.Extensions) == 0 {
		return fmt.Errorf("config: library.extensions must list at least one archive extension")
	}
	if c.Tags.PriceCountry == "" {
		return fmt.Errorf("config: tags.price_country must be set")
	}
	if len(c.Tags.PriceCountry) != 2 {
		return fmt.Errorf("config: tags.price_country %q must be a two-letter country code", c.Tags.PriceCountry)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("config: watch.debounce_ms must not be negative")
	}
	return nil
}
