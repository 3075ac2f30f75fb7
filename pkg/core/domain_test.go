package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/multilan/pkg/core"
)

func TestCanonicalizeID(t *testing.T) {
	tests := []struct {
		raw  string
		want core.CanonicalID
	}{
		{"10001", "10001"},
		{" 42 ", "42"},
		{"10001.0", "10001"},
		{"1e4", "10000"},
		{"007", "7"},
		{"abc-1", "abc-1"},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := core.CanonicalizeID(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := core.CanonicalizeID("   ")
	assert.Error(t, err)
}

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		raw  string
		want core.LanguageCode
		ok   bool
	}{
		{"en", core.LangEN, true},
		{"FR", core.LangFR, true},
		{"fr-BE", core.LangFR, true},
		{"nl_NL", core.LangNL, true},
		{"de-CH", core.LangDE, true},
		{"es", "", false},
		{"", "", false},
		{"not a tag", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := core.ParseLanguageCode(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLanguageFromID(t *testing.T) {
	code, ok := core.LanguageFromID(2)
	assert.True(t, ok)
	assert.Equal(t, core.LangFR, code)

	_, ok = core.LanguageFromID(99)
	assert.False(t, ok)
}

func TestLanguagesPriority(t *testing.T) {
	langs := core.Languages()
	assert.Equal(t, []core.LanguageCode{core.LangEN, core.LangFR, core.LangNL, core.LangDE}, langs)
	assert.Equal(t, core.DefaultLanguage, langs[0])

	// callers get a copy
	langs[0] = core.LangDE
	assert.Equal(t, core.LangEN, core.Languages()[0])
}

func TestParseStatus(t *testing.T) {
	s, ok := core.ParseStatus(" validated ")
	assert.True(t, ok)
	assert.Equal(t, core.StatusValidated, s)

	_, ok = core.ParseStatus("PENDING_REVIEW")
	assert.False(t, ok)
}

func TestStatusesOrder(t *testing.T) {
	statuses := core.Statuses()
	assert.Equal(t, []core.Status{
		core.StatusDraft, core.StatusToTranslate, core.StatusTranslated, core.StatusValidated, core.StatusArchived,
	}, statuses)

	statuses[0] = "MUTATED"
	assert.Equal(t, core.StatusDraft, core.Statuses()[0])
}

func TestFormatError(t *testing.T) {
	var err error = &core.FormatError{Format: "multilan-page", Expected: "object with resultList", Issues: []string{"#: missing resultList"}}

	assert.True(t, errors.Is(err, core.ErrInvalidFormat))
	assert.Contains(t, err.Error(), "expected object with resultList")
	assert.Contains(t, err.Error(), "missing resultList")

	var fe *core.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "multilan-page", fe.Format)
}

func TestReloadEventString(t *testing.T) {
	e := core.ReloadEvent{Generation: "g1", Source: "multilan-list", Translations: 3}
	assert.Equal(t, "reloaded multilan-list (3 translations, generation g1)", e.String())

	e = core.ReloadEvent{Err: errors.New("boom")}
	assert.Equal(t, "reload failed: boom", e.String())
}
