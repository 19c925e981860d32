package config

// Default returns the baseline configuration before any file is applied.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: "~/.local/share/longbox",
			LogDir:  "~/.local/share/longbox/logs",
		},
		Library: Library{
			Extensions: []string{".cbz", ".zip"},
			SkipHidden: true,
		},
		Tags: Tags{
			PreferredSource: "Metron",
			PriceCountry:    "US",
		},
		Watch: Watch{
			Enabled:    false,
			DebounceMS: 500,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
