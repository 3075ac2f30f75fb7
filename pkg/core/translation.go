package core

// Translations holds the wordings of one CanonicalID keyed by language.
// A language without a wording has no key.
type Translations map[LanguageCode]string

// Clone returns an independent copy.
func (t Translations) Clone() Translations {
	if t == nil {
		return nil
	}
	out := make(Translations, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Each visits the wordings in language priority order.
func (t Translations) Each(fn func(lang LanguageCode, wording string) bool) {
	for _, lang := range languagePriority {
		w, ok := t[lang]
		if !ok {
			continue
		}
		if !fn(lang, w) {
			return
		}
	}
}

// TranslationMap is the ordered, read-only mapping CanonicalID -> Translations.
// The insertion order of IDs is preserved and used as the first-seen order by
// the search engine and the reverse text index.
type TranslationMap struct {
	order   []CanonicalID
	entries map[CanonicalID]Translations
}

// Len returns the number of IDs.
func (m *TranslationMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// IDs returns the IDs in insertion order.
func (m *TranslationMap) IDs() []CanonicalID {
	if m == nil {
		return nil
	}
	out := make([]CanonicalID, len(m.order))
	copy(out, m.order)
	return out
}

// Get returns the translations for id. The returned map must not be modified.
func (m *TranslationMap) Get(id CanonicalID) (Translations, bool) {
	if m == nil {
		return nil, false
	}
	t, ok := m.entries[id]
	return t, ok
}

// Wording returns the wording of id in lang.
func (m *TranslationMap) Wording(id CanonicalID, lang LanguageCode) (string, bool) {
	t, ok := m.Get(id)
	if !ok {
		return "", false
	}
	w, ok := t[lang]
	return w, ok
}

// Range visits every entry in insertion order until fn returns false.
func (m *TranslationMap) Range(fn func(id CanonicalID, t Translations) bool) {
	if m == nil {
		return
	}
	for _, id := range m.order {
		if !fn(id, m.entries[id]) {
			return
		}
	}
}

// TranslationMapBuilder accumulates entries for a new TranslationMap.
// It is not safe for concurrent use.
type TranslationMapBuilder struct {
	m *TranslationMap
}

// NewTranslationMapBuilder returns an empty builder.
func NewTranslationMapBuilder() *TranslationMapBuilder {
	return &TranslationMapBuilder{m: &TranslationMap{entries: make(map[CanonicalID]Translations)}}
}

// Add records a wording. Invalid languages and empty wordings are ignored.
// A later wording for the same (id, lang) replaces the earlier one; the ID
// keeps its first-seen position.
func (b *TranslationMapBuilder) Add(id CanonicalID, lang LanguageCode, wording string) *TranslationMapBuilder {
	if id == "" || wording == "" || !lang.Valid() {
		return b
	}
	t, ok := b.m.entries[id]
	if !ok {
		t = make(Translations)
		b.m.entries[id] = t
		b.m.order = append(b.m.order, id)
	}
	t[lang] = wording
	return b
}

// AddAll records every wording of t for id.
func (b *TranslationMapBuilder) AddAll(id CanonicalID, t Translations) *TranslationMapBuilder {
	t.Each(func(lang LanguageCode, wording string) bool {
		b.Add(id, lang, wording)
		return true
	})
	return b
}

// Build returns the map. The builder must not be used afterwards.
func (b *TranslationMapBuilder) Build() *TranslationMap {
	m := b.m
	b.m = &TranslationMap{entries: make(map[CanonicalID]Translations)}
	return m
}

// Entry pairs an ID with its translations, used to build maps literally.
type Entry struct {
	ID           CanonicalID
	Translations Translations
}

// NewTranslationMap builds a map from entries in the given order.
func NewTranslationMap(entries ...Entry) *TranslationMap {
	b := NewTranslationMapBuilder()
	for _, e := range entries {
		b.AddAll(e.ID, e.Translations)
	}
	return b.Build()
}
