package core

import "time"

// Metadata describes the workflow state of one CanonicalID.
// Every field is optional; adapters fill what their payload carries.
type Metadata struct {
	Status         Status       `json:"status,omitempty"`
	CreatedAt      *time.Time   `json:"createdAt,omitempty"`
	ModifiedAt     *time.Time   `json:"modifiedAt,omitempty"`
	ModifiedBy     string       `json:"modifiedBy,omitempty"`
	SourceLanguage LanguageCode `json:"sourceLanguage,omitempty"`
}

// IsZero reports whether no field is set.
func (m Metadata) IsZero() bool {
	return m.Status == "" && m.CreatedAt == nil && m.ModifiedAt == nil &&
		m.ModifiedBy == "" && m.SourceLanguage == ""
}

// MetadataMap maps CanonicalID to Metadata. It may cover fewer IDs than the
// TranslationMap it is paired with.
type MetadataMap map[CanonicalID]Metadata

// Lookup returns a copy of the metadata for id, or nil when absent.
func (m MetadataMap) Lookup(id CanonicalID) *Metadata {
	if m == nil {
		return nil
	}
	md, ok := m[id]
	if !ok {
		return nil
	}
	return &md
}
