// Package config loads the CLI configuration from an optional YAML file and
// MULTILAN_* environment variables.
package config

import (
	"log/slog"
	"time"
)

// Config is the root CLI configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Match   MatchConfig   `yaml:"match"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig locates the catalog pages on disk.
type CatalogConfig struct {
	Path     string        `yaml:"path"     env:"MULTILAN_CATALOG"  env-default:"."`
	Pattern  string        `yaml:"pattern"  env:"MULTILAN_PATTERN"  env-default:"**/*.{json,yaml,yml}"`
	Debounce time.Duration `yaml:"debounce" env:"MULTILAN_DEBOUNCE" env-default:"100ms"`
}

// MatchConfig tunes search and linking. FuzzyThreshold has no env-default
// since 0 is a valid value; Load presets it instead.
type MatchConfig struct {
	FuzzyThreshold     float64 `yaml:"fuzzy_threshold"     env:"MULTILAN_FUZZY_THRESHOLD"`
	SuggestionLimit    int     `yaml:"suggestion_limit"    env:"MULTILAN_SUGGESTION_LIMIT"    env-default:"3"`
	SearchLimit        int     `yaml:"search_limit"        env:"MULTILAN_SEARCH_LIMIT"        env-default:"20"`
	OverflowMultiplier float64 `yaml:"overflow_multiplier" env:"MULTILAN_OVERFLOW_MULTIPLIER" env-default:"1.2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"MULTILAN_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"MULTILAN_LOG_FORMAT" env-default:"text"`
}

// SlogLevel maps Level onto slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
