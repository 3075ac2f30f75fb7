// Package catalog owns the current translation Store and exposes the engine
// operations over it.
//
// A reload builds a complete new Store from the configured loader and swaps
// it in atomically, so concurrent readers see either the old or the new
// catalog, never a mix.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/linking"
	"github.com/aretw0/multilan/pkg/search"
)

// Watchable is implemented by loaders that can report catalog changes.
type Watchable interface {
	Watch(ctx context.Context, onChange func(context.Context)) error
}

// Config holds the Service settings.
type Config struct {
	Logger  *slog.Logger
	Matcher linking.Options
	// SearchLimit caps Search and GlobalSearch results; 0 means no limit.
	SearchLimit        int
	OverflowMultiplier float64
	// ErrorHandler receives reload failures that happen while watching.
	ErrorHandler func(error)
}

// Service holds the current Store and runs engine operations against it.
type Service struct {
	loader  core.Loader
	config  Config
	matcher *linking.Matcher

	store    atomic.Pointer[core.Store]
	reloadMu sync.Mutex

	reloads  atomic.Int64
	failures atomic.Int64
	lastErr  atomic.Value // string
}

// NewService creates a Service. No catalog is loaded until Reload is called.
func NewService(loader core.Loader, config Config) *Service {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.OverflowMultiplier <= 0 {
		config.OverflowMultiplier = linking.DefaultOverflowMultiplier
	}
	if config.SearchLimit < 0 {
		config.SearchLimit = 0
	}
	return &Service{
		loader:  loader,
		config:  config,
		matcher: linking.NewMatcher(config.Matcher),
	}
}

// Reload builds a fresh Store from the loader and swaps it in. On failure the
// previous Store stays current.
func (s *Service) Reload(ctx context.Context) (*core.Store, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	port, err := s.loader.Load(ctx)
	if err != nil {
		s.failures.Add(1)
		s.lastErr.Store(err.Error())
		s.config.Logger.Error("catalog reload failed", "error", err)
		return nil, fmt.Errorf("reload catalog: %w", err)
	}

	store := core.NewStore(port)
	s.store.Store(store)
	s.reloads.Add(1)
	s.lastErr.Store("")

	s.config.Logger.Info("catalog reloaded",
		"generation", store.Generation(),
		"source", store.Source(),
		"translations", store.Count(),
		"duration", time.Since(start),
	)
	return store, nil
}

// Store returns the current Store.
func (s *Service) Store() (*core.Store, error) {
	store := s.store.Load()
	if store == nil {
		return nil, core.ErrNotLoaded
	}
	return store, nil
}

// Matcher returns the configured matcher.
func (s *Service) Matcher() *linking.Matcher { return s.matcher }

// OverflowMultiplier returns the configured overflow multiplier.
func (s *Service) OverflowMultiplier() float64 { return s.config.OverflowMultiplier }

// SearchLimit returns the configured result cap.
func (s *Service) SearchLimit() int { return s.config.SearchLimit }

// Search ranks catalog entries against query.
func (s *Service) Search(query string) ([]core.SearchResult, error) {
	store, err := s.Store()
	if err != nil {
		return nil, err
	}
	return search.Search(store.Translations(), query, s.config.SearchLimit), nil
}

// GlobalSearch ranks catalog entries against query, including ID matches,
// variable occurrences and metadata.
func (s *Service) GlobalSearch(query string) ([]core.SearchResult, error) {
	store, err := s.Store()
	if err != nil {
		return nil, err
	}
	return search.GlobalSearch(store.Translations(), query, s.config.SearchLimit, store.Metadata()), nil
}

// BulkMatch classifies items against the current catalog.
func (s *Service) BulkMatch(items []core.Candidate) (core.BulkMatchResult, error) {
	store, err := s.Store()
	if err != nil {
		return core.BulkMatchResult{}, err
	}
	return s.matcher.BulkMatch(store.Translations(), items), nil
}

// DetectMatch classifies a single item against the current catalog.
func (s *Service) DetectMatch(item core.Candidate) (core.MatchClassification, error) {
	store, err := s.Store()
	if err != nil {
		return core.MatchClassification{}, err
	}
	return s.matcher.DetectMatch(store, item), nil
}

// DetectLanguage returns the language most linked items are displayed in.
func (s *Service) DetectLanguage(items []linking.LinkedText) (core.LanguageCode, error) {
	store, err := s.Store()
	if err != nil {
		return "", err
	}
	return linking.DetectLanguage(store.Translations(), items), nil
}

// PlanSwitch computes the texts to display items in target.
func (s *Service) PlanSwitch(items []linking.SwitchItem, target core.LanguageCode) (linking.SwitchPlan, error) {
	if !target.Valid() {
		return linking.SwitchPlan{}, fmt.Errorf("unsupported language %q", target)
	}
	store, err := s.Store()
	if err != nil {
		return linking.SwitchPlan{}, err
	}
	return linking.PlanSwitch(store.Translations(), items, target), nil
}

// RecordOverflow flags id in result when the measured width grew beyond the
// configured multiplier.
func (s *Service) RecordOverflow(result *core.SwitchResult, id core.CanonicalID, before, after float64) bool {
	return result.RecordOverflow(id, before, after, s.config.OverflowMultiplier)
}

// Watch reloads the catalog whenever the loader reports a change and
// publishes one ReloadEvent per attempt. The channel closes when ctx is done.
func (s *Service) Watch(ctx context.Context) (<-chan core.ReloadEvent, error) {
	w, ok := s.loader.(Watchable)
	if !ok {
		return nil, errors.New("loader does not support watching")
	}

	stream := &eventStream{ch: make(chan core.ReloadEvent, 16)}
	onChange := func(ctx context.Context) {
		stream.publish(ctx, s.reloadEvent(ctx))
	}
	if err := w.Watch(ctx, onChange); err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stream.close()
		return nil
	})
	return stream.ch, nil
}

func (s *Service) reloadEvent(ctx context.Context) core.ReloadEvent {
	store, err := s.Reload(ctx)
	if err != nil {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(err)
		}
		return core.ReloadEvent{Err: err, Timestamp: time.Now().Unix()}
	}
	return core.ReloadEvent{
		Generation:   store.Generation(),
		Source:       store.Source(),
		Translations: store.Count(),
		Timestamp:    store.LoadedAt().Unix(),
	}
}

// eventStream is a reload channel that may be closed while publishers run.
type eventStream struct {
	mu     sync.Mutex
	ch     chan core.ReloadEvent
	closed bool
}

func (e *eventStream) publish(ctx context.Context, ev core.ReloadEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	select {
	case e.ch <- ev:
	case <-ctx.Done():
	}
}

func (e *eventStream) close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.closed {
		e.closed = true
		close(e.ch)
	}
}
