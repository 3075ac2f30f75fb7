package core

import (
	"time"

	"github.com/google/uuid"
)

// Store is the immutable (TranslationMap, MetadataMap) snapshot produced by an
// adapter. A refresh builds a new Store; holders swap their reference and
// never mutate one in place.
type Store struct {
	translations *TranslationMap
	metadata     MetadataMap
	source       string
	generation   string
	loadedAt     time.Time
}

// NewStore snapshots the data exposed by port.
func NewStore(port TranslationDataPort) *Store {
	return &Store{
		translations: port.TranslationMap(),
		metadata:     port.MetadataMap(),
		source:       port.SourceIdentifier(),
		generation:   uuid.NewString(),
		loadedAt:     time.Now(),
	}
}

// NewStoreFromMaps builds a Store from already canonical maps.
func NewStoreFromMaps(tm *TranslationMap, md MetadataMap, source string) *Store {
	if tm == nil {
		tm = NewTranslationMap()
	}
	return &Store{
		translations: tm,
		metadata:     md,
		source:       source,
		generation:   uuid.NewString(),
		loadedAt:     time.Now(),
	}
}

// Translations returns the translation map; nil for a nil Store.
func (s *Store) Translations() *TranslationMap {
	if s == nil {
		return nil
	}
	return s.translations
}

// Metadata returns the metadata map; nil for a nil Store.
func (s *Store) Metadata() MetadataMap {
	if s == nil {
		return nil
	}
	return s.metadata
}

// Source names the format the Store was built from; empty for a nil Store.
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Generation identifies this snapshot; empty for a nil Store.
func (s *Store) Generation() string {
	if s == nil {
		return ""
	}
	return s.generation
}

// LoadedAt is the snapshot time; zero for a nil Store.
func (s *Store) LoadedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.loadedAt
}

// Count returns the number of translatable units.
func (s *Store) Count() int { return s.Translations().Len() }
