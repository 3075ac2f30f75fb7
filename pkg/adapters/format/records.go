package format

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/multilan/pkg/core"
)

// Record is one upstream translatable unit with its per-language texts.
type Record struct {
	ID    json.Number `json:"id"`
	Texts []TextEntry `json:"multilanTextList"`
}

// TextEntry is one upstream wording. The language is given either as a tag
// (LanguageCode) or as a numeric foreign key (LanguageID); the tag wins when
// both resolve.
type TextEntry struct {
	ID               json.Number `json:"id,omitempty"`
	LanguageID       json.Number `json:"languageId,omitempty"`
	LanguageCode     string      `json:"languageCode,omitempty"`
	Wording          string      `json:"wording"`
	Status           string      `json:"status,omitempty"`
	CreatedAt        Timestamp   `json:"createdAt,omitzero"`
	ModifiedAt       Timestamp   `json:"modifiedAt,omitzero"`
	ModifiedBy       string      `json:"modifiedBy,omitempty"`
	SourceLanguageID json.Number `json:"sourceLanguageId,omitempty"`
}

// Language resolves the entry language.
func (e TextEntry) Language() (core.LanguageCode, bool) {
	if code, ok := core.ParseLanguageCode(e.LanguageCode); ok {
		return code, true
	}
	if n, ok := toInt(e.LanguageID); ok {
		return core.LanguageFromID(n)
	}
	return "", false
}

// Metadata derives the canonical metadata carried by the entry.
func (e TextEntry) Metadata() core.Metadata {
	var md core.Metadata
	if s, ok := core.ParseStatus(e.Status); ok {
		md.Status = s
	}
	md.CreatedAt = e.CreatedAt.Ptr()
	md.ModifiedAt = e.ModifiedAt.Ptr()
	md.ModifiedBy = strings.TrimSpace(e.ModifiedBy)
	if n, ok := toInt(e.SourceLanguageID); ok {
		if code, ok := core.LanguageFromID(n); ok {
			md.SourceLanguage = code
		}
	}
	return md
}

// hintedRecord pairs a record with its optional "most relevant text" hint.
type hintedRecord struct {
	record Record
	hint   json.Number
}

// buildMaps applies the canonicalization rules shared by every adapter.
func buildMaps(records []hintedRecord) (*core.TranslationMap, core.MetadataMap) {
	b := core.NewTranslationMapBuilder()
	md := make(core.MetadataMap)

	for _, hr := range records {
		id, err := core.CanonicalizeID(hr.record.ID.String())
		if err != nil {
			continue
		}
		for _, text := range hr.record.Texts {
			lang, ok := text.Language()
			if !ok || text.Wording == "" {
				continue
			}
			b.Add(id, lang, text.Wording)
		}
		if entry, ok := designatedText(hr.record.Texts, hr.hint); ok {
			if m := entry.Metadata(); !m.IsZero() {
				md[id] = m
			}
		}
	}
	return b.Build(), md
}

// designatedText picks the entry matching hint, else the first entry.
func designatedText(texts []TextEntry, hint json.Number) (TextEntry, bool) {
	if len(texts) == 0 {
		return TextEntry{}, false
	}
	if want, ok := toInt(hint); ok {
		for _, t := range texts {
			if got, ok := toInt(t.ID); ok && got == want {
				return t, true
			}
		}
	}
	return texts[0], true
}

func toInt(n json.Number) (int64, bool) {
	if n == "" {
		return 0, false
	}
	if v, err := n.Int64(); err == nil {
		return v, true
	}
	f, err := n.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// Timestamp is an optional upstream instant. It accepts RFC 3339 strings,
// zone-less ISO local date-times (read as UTC) and epoch milliseconds;
// anything else decodes to the zero Timestamp.
type Timestamp struct {
	time.Time
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '"' {
		if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	t.Time = parseTime(strings.TrimSpace(s))
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Ptr returns the instant, or nil when absent.
func (t Timestamp) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return v
	}
	for _, layout := range localLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v
		}
	}
	return time.Time{}
}
