package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks value ranges. Load calls it automatically.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Catalog),
		validation.Field(&c.Match),
		validation.Field(&c.Log),
	)
}

func (c CatalogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
		validation.Field(&c.Debounce, validation.Required, validation.Min(time.Millisecond)),
	)
}

func (m MatchConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.FuzzyThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&m.SuggestionLimit, validation.Required, validation.Min(1)),
		validation.Field(&m.SearchLimit, validation.Required, validation.Min(1)),
		validation.Field(&m.OverflowMultiplier, validation.Required, validation.Min(1.0)),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}
