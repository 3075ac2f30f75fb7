package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/adapters/fs"
	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/linking"
)

// options holds the internal configuration for the multilan catalog service.
type options struct {
	loader             core.Loader
	logger             *slog.Logger
	pattern            string
	exclude            []string
	registry           *format.Registry
	serializers        map[string]fs.Serializer
	matcher            linking.Options
	searchLimit        int
	overflowMultiplier float64
	debounce           time.Duration
	errorHandler       func(error)
	lazy               bool
}

// Option defines a functional option for configuring the catalog service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		pattern:            fs.DefaultPattern,
		serializers:        make(map[string]fs.Serializer),
		matcher:            linking.DefaultOptions(),
		overflowMultiplier: linking.DefaultOverflowMultiplier,
		debounce:           fs.DefaultDebounce,
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoader injects a custom catalog loader (e.g. an in-memory fixture).
// If provided, the filesystem source is skipped and the URI is ignored.
func WithLoader(loader core.Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithExclude skips catalog files matching any of the given doublestar globs
// (relative to the catalog root) or absolute paths.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

// WithPattern sets the doublestar glob selecting catalog files below the root.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithRegistry replaces the format detection registry.
func WithRegistry(reg *format.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithSerializer registers a serializer for a file extension (e.g. ".json5").
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithFuzzyThreshold sets the minimum top score for a Close classification.
func WithFuzzyThreshold(threshold float64) Option {
	return func(o *options) {
		o.matcher.FuzzyThreshold = threshold
	}
}

// WithSuggestionLimit caps the suggestions of a Close classification.
func WithSuggestionLimit(limit int) Option {
	return func(o *options) {
		o.matcher.SuggestionLimit = limit
	}
}

// WithOverflowMultiplier sets the width growth tolerated after a language switch.
func WithOverflowMultiplier(m float64) Option {
	return func(o *options) {
		o.overflowMultiplier = m
	}
}

// WithSearchLimit caps search results. Zero means no limit.
func WithSearchLimit(limit int) Option {
	return func(o *options) {
		o.searchLimit = limit
	}
}

// WithWatchDebounce sets the quiet period before a burst of file changes
// triggers a reload.
func WithWatchDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching: fsnotify failures and failed reloads. They are logged either way.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithLazyLoad skips the initial load; the caller must Reload before use.
func WithLazyLoad(lazy bool) Option {
	return func(o *options) {
		o.lazy = lazy
	}
}
