package variables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/variables"
)

func TestExtract(t *testing.T) {
	assert.Equal(t, []string{"count", "name"}, variables.Extract("###count### items for ###name###, ###count### left"))
	assert.Nil(t, variables.Extract("no tokens here"))
	assert.Nil(t, variables.Extract("##half## ###broken"))
}

func TestExtractOccurrences(t *testing.T) {
	got := variables.ExtractOccurrences("###a### and ###b### then ###a###")
	require.Len(t, got, 3)

	assert.Equal(t, core.VariableOccurrence{Name: "a", Key: "a_1", Index: 1, IsIndexed: true}, got[0])
	assert.Equal(t, core.VariableOccurrence{Name: "b", Key: "b", Index: 1, IsIndexed: false}, got[1])
	assert.Equal(t, core.VariableOccurrence{Name: "a", Key: "a_2", Index: 2, IsIndexed: true}, got[2])
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values map[string]string
		want   string
	}{
		{
			name:   "unique name",
			text:   "Hello ###name###!",
			values: map[string]string{"name": "Ada"},
			want:   "Hello Ada!",
		},
		{
			name:   "indexed keys win over bare name",
			text:   "###n### of ###n###",
			values: map[string]string{"n_1": "1", "n_2": "5", "n": "x"},
			want:   "1 of 5",
		},
		{
			name:   "bare name fallback for repeats",
			text:   "###n### of ###n###",
			values: map[string]string{"n_2": "5", "n": "x"},
			want:   "x of 5",
		},
		{
			name:   "unresolved stays verbatim",
			text:   "Dear ###title### ###name###",
			values: map[string]string{"name": "Ada"},
			want:   "Dear ###title### Ada",
		},
		{
			name:   "no values",
			text:   "###a###",
			values: nil,
			want:   "###a###",
		},
		{
			name:   "values are not rescanned",
			text:   "###a###",
			values: map[string]string{"a": "###b###", "b": "no"},
			want:   "###b###",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, variables.Replace(tc.text, tc.values))
		})
	}
}

func TestReplace_RoundTripIsIdempotent(t *testing.T) {
	wordings := []string{
		"###count### files in ###folder###",
		"###x### + ###x### = ###y###",
		"plain text",
	}
	for _, w := range wordings {
		values := make(map[string]string)
		for _, occ := range variables.ExtractOccurrences(w) {
			values[occ.Key] = "<" + occ.Key + ">"
		}

		once := variables.Replace(w, values)
		assert.Empty(t, variables.Extract(once), "every occurrence key must resolve: %q", w)
		assert.Equal(t, once, variables.Replace(once, values))
	}

	assert.Equal(t, "<x_1> + <x_2> = <y>", variables.Replace("###x### + ###x### = ###y###", map[string]string{
		"x_1": "<x_1>", "x_2": "<x_2>", "y": "<y>",
	}))
}

func TestReconcile_UsesMaxCountAcrossLanguages(t *testing.T) {
	tr := core.Translations{
		core.LangEN: "###n### file",
		core.LangFR: "###n### fichier sur ###n###, ###user###",
		core.LangNL: "###user### heeft ###n###",
	}

	got := variables.Reconcile(tr)
	require.Len(t, got, 3)
	assert.Equal(t, core.VariableOccurrence{Name: "n", Key: "n_1", Index: 1, IsIndexed: true}, got[0])
	assert.Equal(t, core.VariableOccurrence{Name: "n", Key: "n_2", Index: 2, IsIndexed: true}, got[1])
	assert.Equal(t, core.VariableOccurrence{Name: "user", Key: "user", Index: 1, IsIndexed: false}, got[2])

	assert.Nil(t, variables.Reconcile(core.Translations{core.LangEN: "none"}))
}
