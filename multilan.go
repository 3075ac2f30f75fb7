package multilan

import (
	"log/slog"
	"time"

	"github.com/aretw0/multilan/internal/platform"
	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/adapters/fs"
	"github.com/aretw0/multilan/pkg/catalog"
	"github.com/aretw0/multilan/pkg/core"
)

// --- Types ---

// Service is the catalog service returned by New.
type Service = catalog.Service

// Store is an immutable catalog snapshot.
type Store = core.Store

// LanguageCode is one of the supported languages.
type LanguageCode = core.LanguageCode

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithLoader injects a custom catalog loader.
func WithLoader(loader core.Loader) Option {
	return platform.WithLoader(loader)
}

// WithPattern sets the glob selecting catalog files.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithExclude skips catalog files matching the given globs or absolute paths.
func WithExclude(patterns ...string) Option {
	return platform.WithExclude(patterns...)
}

// WithRegistry replaces the format detection registry.
func WithRegistry(reg *format.Registry) Option {
	return platform.WithRegistry(reg)
}

// WithSerializer registers a serializer for a file extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithFuzzyThreshold sets the minimum score of a close match.
func WithFuzzyThreshold(threshold float64) Option {
	return platform.WithFuzzyThreshold(threshold)
}

// WithSuggestionLimit caps the suggestions of a close match.
func WithSuggestionLimit(limit int) Option {
	return platform.WithSuggestionLimit(limit)
}

// WithOverflowMultiplier sets the tolerated width growth after a switch.
func WithOverflowMultiplier(m float64) Option {
	return platform.WithOverflowMultiplier(m)
}

// WithSearchLimit caps search results.
func WithSearchLimit(limit int) Option {
	return platform.WithSearchLimit(limit)
}

// WithWatchDebounce sets the quiet period before a reload.
func WithWatchDebounce(d time.Duration) Option {
	return platform.WithWatchDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watch failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithLazyLoad skips the initial load.
func WithLazyLoad(lazy bool) Option {
	return platform.WithLazyLoad(lazy)
}

// --- Factory ---

// New creates a catalog service for the catalog at path and loads it.
func New(path string, opts ...Option) (*Service, error) {
	return platform.New(path, opts...)
}
