package config

import (
	"strings"
)

// normalize expands paths and trims string fields so validation and the rest
// of the program see canonical values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	roots := make([]string, 0, len(c.Library.Roots))
	for _, root := range c.Library.Roots {
		trimmed := strings.TrimSpace(root)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		roots = append(roots, expanded)
	}
	c.Library.Roots = roots

	extensions := make([]string, 0, len(c.Library.Extensions))
	for _, ext := range c.Library.Extensions {
		trimmed := strings.ToLower(strings.TrimSpace(ext))
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		extensions = append(extensions, trimmed)
	}
	c.Library.Extensions = extensions

	c.Tags.PreferredSource = strings.TrimSpace(c.Tags.PreferredSource)
	c.Tags.PriceCountry = strings.ToUpper(strings.TrimSpace(c.Tags.PriceCountry))
	c.Tags.FallbackLanguage = strings.TrimSpace(c.Tags.FallbackLanguage)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}
