// Package core holds the canonical translation model shared by every other
// package: identifiers, the closed language set, the immutable store and the
// ports that format adapters implement.
package core

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// CanonicalID uniquely identifies one translatable unit (a "multilan").
// It is produced at the adapter boundary by CanonicalizeID and stays stable
// for the lifetime of a loaded catalog.
type CanonicalID string

func (id CanonicalID) String() string { return string(id) }

// CanonicalizeID turns an upstream identifier into a CanonicalID.
// Integer values (including "10001.0" or "1e4") are rendered in base 10;
// non-numeric identifiers are kept verbatim after trimming.
func CanonicalizeID(raw string) (CanonicalID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty identifier")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return CanonicalID(strconv.FormatInt(n, 10)), nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return CanonicalID(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return CanonicalID(raw), nil
}

// LanguageCode is one of the supported catalog languages.
type LanguageCode string

const (
	LangEN LanguageCode = "en"
	LangFR LanguageCode = "fr"
	LangNL LanguageCode = "nl"
	LangDE LanguageCode = "de"
)

// DefaultLanguage is the canonical default, first in priority order.
const DefaultLanguage = LangEN

var languagePriority = [...]LanguageCode{LangEN, LangFR, LangNL, LangDE}

// languageIDs maps the upstream numeric language foreign key.
var languageIDs = map[int64]LanguageCode{
	1: LangEN,
	2: LangFR,
	3: LangNL,
	4: LangDE,
}

// Languages returns the supported languages in fixed priority order.
func Languages() []LanguageCode {
	out := make([]LanguageCode, len(languagePriority))
	copy(out, languagePriority[:])
	return out
}

// Valid reports whether c belongs to the supported set.
func (c LanguageCode) Valid() bool {
	for _, l := range languagePriority {
		if l == c {
			return true
		}
	}
	return false
}

func (c LanguageCode) String() string { return string(c) }

// ParseLanguageCode resolves an upstream language tag ("fr", "FR", "fr-BE",
// "nl_NL") to a supported LanguageCode using its base language.
func ParseLanguageCode(raw string) (LanguageCode, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	code := LanguageCode(base.String())
	if !code.Valid() {
		return "", false
	}
	return code, true
}

// LanguageFromID resolves the upstream numeric language key.
func LanguageFromID(id int64) (LanguageCode, bool) {
	code, ok := languageIDs[id]
	return code, ok
}

// Status is the workflow state of a translation.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusToTranslate Status = "TO_TRANSLATE"
	StatusTranslated  Status = "TRANSLATED"
	StatusValidated   Status = "VALIDATED"
	StatusArchived    Status = "ARCHIVED"
)

var statusOrder = [...]Status{StatusDraft, StatusToTranslate, StatusTranslated, StatusValidated, StatusArchived}

// Statuses returns the workflow states in workflow order.
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder[:])
	return out
}

// ParseStatus maps an upstream status string onto the closed Status set.
// Unknown values report false.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusDraft, StatusToTranslate, StatusTranslated, StatusValidated, StatusArchived:
		return s, true
	}
	return "", false
}

// ReloadEvent is published whenever a new Store replaces the previous one.
type ReloadEvent struct {
	Generation   string
	Source       string
	Translations int
	Err          error
	Timestamp    int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e ReloadEvent) String() string {
	if e.Err != nil {
		return "reload failed: " + e.Err.Error()
	}
	return "reloaded " + e.Source + " (" + strconv.Itoa(e.Translations) + " translations, generation " + e.Generation + ")"
}
