package platform

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/aretw0/multilan/internal/config"
	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/adapters/fs"
	"github.com/aretw0/multilan/pkg/catalog"
	"github.com/aretw0/multilan/pkg/core"
)

// New builds a catalog service and performs the initial load.
//
//	svc, err := multilan.New("./catalog", multilan.WithFuzzyThreshold(0.4))
//
// The URI is the catalog directory or file for the filesystem source.
func New(uri string, opts ...Option) (*catalog.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	loader := o.loader
	if loader == nil {
		loader = newSource(uri, o, logger)
	}

	service := catalog.NewService(loader, catalog.Config{
		Logger:             logger,
		Matcher:            o.matcher,
		SearchLimit:        o.searchLimit,
		OverflowMultiplier: o.overflowMultiplier,
		ErrorHandler:       o.errorHandler,
	})

	if !o.lazy {
		if _, err := service.Reload(context.Background()); err != nil {
			return nil, err
		}
	}
	return service, nil
}

func newSource(path string, o *options, logger *slog.Logger) core.Loader {
	registry := o.registry
	if registry == nil {
		registry = format.DefaultRegistry()
	}

	serializers := fs.DefaultSerializers()
	maps.Copy(serializers, o.serializers)

	return fs.NewSource(fs.Config{
		Path:         path,
		Pattern:      o.pattern,
		Exclude:      append(slices.Clone(o.exclude), "**/"+ConfigFile),
		Registry:     registry,
		Serializers:  serializers,
		Logger:       logger.With("component", "catalog-source"),
		Debounce:     o.debounce,
		ErrorHandler: o.errorHandler,
	})
}

// OptionsFromConfig translates the CLI configuration into options.
func OptionsFromConfig(cfg *config.Config) []Option {
	return []Option{
		WithPattern(cfg.Catalog.Pattern),
		WithWatchDebounce(cfg.Catalog.Debounce),
		WithFuzzyThreshold(cfg.Match.FuzzyThreshold),
		WithSuggestionLimit(cfg.Match.SuggestionLimit),
		WithSearchLimit(cfg.Match.SearchLimit),
		WithOverflowMultiplier(cfg.Match.OverflowMultiplier),
	}
}
