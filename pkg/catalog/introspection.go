package catalog

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Loaded             bool       `json:"loaded"`
	Source             string     `json:"source,omitempty"`
	Generation         string     `json:"generation,omitempty"`
	Translations       int        `json:"translations"`
	MetadataEntries    int        `json:"metadata_entries"`
	LoadedAt           *time.Time `json:"loaded_at,omitempty"`
	Reloads            int64      `json:"reloads"`
	Failures           int64      `json:"failures"`
	LastError          string     `json:"last_error,omitempty"`
	FuzzyThreshold     float64    `json:"fuzzy_threshold"`
	SuggestionLimit    int        `json:"suggestion_limit"`
	SearchLimit        int        `json:"search_limit"`
	OverflowMultiplier float64    `json:"overflow_multiplier"`
	Loader             any        `json:"loader,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	opts := s.matcher.Options()
	state := ServiceState{
		Reloads:            s.reloads.Load(),
		Failures:           s.failures.Load(),
		FuzzyThreshold:     opts.FuzzyThreshold,
		SuggestionLimit:    opts.SuggestionLimit,
		SearchLimit:        s.config.SearchLimit,
		OverflowMultiplier: s.config.OverflowMultiplier,
	}
	if msg, ok := s.lastErr.Load().(string); ok {
		state.LastError = msg
	}
	if store := s.store.Load(); store != nil {
		loadedAt := store.LoadedAt()
		state.Loaded = true
		state.Source = store.Source()
		state.Generation = store.Generation()
		state.Translations = store.Count()
		state.MetadataEntries = len(store.Metadata())
		state.LoadedAt = &loadedAt
	}
	if in, ok := s.loader.(introspection.Introspectable); ok {
		state.Loader = in.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "catalog"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
