package fs

import (
	"slices"
	"time"

	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	Path          string     `json:"path"`
	Pattern       string     `json:"pattern"`
	Serializers   []string   `json:"serializers"`
	Formats       []string   `json:"formats"`
	Files         []string   `json:"files"`
	CacheSize     int        `json:"cache_size"`
	CacheHits     int        `json:"cache_hits"`
	CacheMisses   int        `json:"cache_misses"`
	WatcherActive bool       `json:"watcher_active"`
	LastLoad      *time.Time `json:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serializers := make([]string, 0, len(s.config.Serializers))
	for ext := range s.config.Serializers {
		serializers = append(serializers, ext)
	}
	slices.Sort(serializers)

	hits, misses := s.cache.Stats()
	return SourceState{
		Path:          s.Path,
		Pattern:       s.config.Pattern,
		Serializers:   serializers,
		Formats:       s.config.Registry.Names(),
		Files:         slices.Clone(s.files),
		CacheSize:     s.cache.Len(),
		CacheHits:     hits,
		CacheMisses:   misses,
		WatcherActive: s.watcherActive,
		LastLoad:      s.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "catalog-source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

func (s *Source) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Source) recordLoad(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastLoad = &now
	s.files = files
}
