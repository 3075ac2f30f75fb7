package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aretw0/multilan/pkg/linking"
)

// DefaultPath is read when no config file is named explicitly.
const DefaultPath = "./multilan.yaml"

// ResolvePath returns the config file Load reads for path: path itself when
// non-empty, else MULTILAN_CONFIG, else DefaultPath. explicit is false only
// for DefaultPath.
func ResolvePath(path string) (resolved string, explicit bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv("MULTILAN_CONFIG"); env != "" {
		return env, true
	}
	return DefaultPath, false
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path when non-empty, else MULTILAN_CONFIG, else DefaultPath.
// A missing file is only an error when it was named explicitly.
func Load(path string) (*Config, error) {
	cfg := Config{Match: MatchConfig{FuzzyThreshold: linking.DefaultFuzzyThreshold}}

	path, explicitPath := ResolvePath(path)

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
