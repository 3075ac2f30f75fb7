package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/multilan/pkg/adapters/fs"
	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/linking"
)

const testCatalog = `[
	{"id": 10001, "multilanTextList": [
		{"languageId": 1, "wording": "Submit"},
		{"languageId": 2, "wording": "Soumettre"}]},
	{"id": 10002, "multilanTextList": [
		{"languageId": 1, "wording": "Hello ###name###"},
		{"languageId": 2, "wording": "Bonjour ###name###"}]}
]`

// setupCatalog writes a catalog and a config file pointing at it.
func setupCatalog(t *testing.T) (dir, configFile string) {
	t.Helper()
	dir = t.TempDir()
	catalogDir := filepath.Join(dir, "catalog")
	require.NoError(t, os.Mkdir(catalogDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "page-0.json"), []byte(testCatalog), 0644))

	configFile = filepath.Join(dir, "multilan.yaml")
	cfgYAML := "catalog:\n  path: " + catalogDir + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(configFile, []byte(cfgYAML), 0644))
	return dir, configFile
}

// run executes the root command in-process and returns its stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()

	verbose, jsonOutput, configPath, catalogPath, pattern = false, false, "", "", ""
	searchGlobal, searchLimit = false, 0
	varValues = nil
	linkInput, matchID, detectInput = "-", "", "-"
	switchInput, switchTarget = "-", "en"
	mergeOut = "catalog" + fs.MergedSuffix

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()
	w.Close()
	out := <-done

	require.NoError(t, execErr)
	return out
}

func TestCLI_SearchJSON(t *testing.T) {
	_, configFile := setupCatalog(t)

	out := run(t, "--config", configFile, "--json", "search", "Submit")

	var hits []core.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.NotEmpty(t, hits)
	assert.Equal(t, core.CanonicalID("10001"), hits[0].ID)
	assert.Equal(t, 1.0, hits[0].Score)
}

func TestCLI_VarsReplace(t *testing.T) {
	_, configFile := setupCatalog(t)

	out := run(t, "--config", configFile, "vars", "replace", "Hi ###a### and ###a###", "--set", "a=X", "--set", "a_2=Y")
	assert.Equal(t, "Hi X and Y\n", out)
}

func TestCLI_Switch(t *testing.T) {
	dir, configFile := setupCatalog(t)

	items := `[{"identity": "n1", "multilanId": "10002", "values": {"name": "Ada"}}, {"identity": "n2", "multilanId": "42"}]`
	input := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(input, []byte(items), 0644))

	out := run(t, "--config", configFile, "--json", "switch", "--to", "fr", "--input", input)

	var plan linking.SwitchPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Changes, 1)
	assert.Equal(t, "Bonjour Ada", plan.Changes[0].Text)
	assert.Equal(t, []core.CanonicalID{"42"}, plan.Result.Missing)
}

func TestCLI_Merge(t *testing.T) {
	dir, configFile := setupCatalog(t)
	outFile := filepath.Join(dir, "merged.json")

	out := run(t, "--config", configFile, "merge", "--out", outFile)
	assert.Contains(t, out, "Merged 1 file(s)")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Soumettre")
}

func TestCLI_MergeTwiceInsideCatalog(t *testing.T) {
	dir, configFile := setupCatalog(t)
	outFile := filepath.Join(dir, "catalog", "all"+fs.MergedSuffix)

	for range 2 {
		out := run(t, "--config", configFile, "merge", "--out", outFile)
		assert.Contains(t, out, "Merged 1 file(s)")
	}

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 2)

	var stats catalogStats
	require.NoError(t, json.Unmarshal([]byte(run(t, "--config", configFile, "--json", "stats")), &stats))
	assert.Equal(t, 2, stats.Translations)
}

func TestCLI_ConfigInsideCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page-0.json"), []byte(testCatalog), 0644))

	configFile := filepath.Join(dir, "custom.yaml")
	cfgYAML := "catalog:\n  path: " + dir + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(configFile, []byte(cfgYAML), 0644))

	out := run(t, "--config", configFile, "search", "Submit")
	assert.Contains(t, out, "10001")
}

// writeItems stores a JSON input file for the batch commands.
func writeItems(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLI_Link(t *testing.T) {
	dir, configFile := setupCatalog(t)
	input := writeItems(t, dir, `[
		{"identity": "a", "text": "Submit"},
		{"identity": "b", "text": "Submit form"},
		{"identity": "c", "text": "zzz"}]`)

	out := run(t, "--config", configFile, "link", "--input", input)
	assert.Contains(t, out, "Exact: 1, Fuzzy: 1, Unmatched: 1")
	assert.Contains(t, out, "= a -> 10001")
	assert.Contains(t, out, "~ b -> 10001 (0.50)")
	assert.Contains(t, out, "? c")
}

func TestCLI_Match(t *testing.T) {
	_, configFile := setupCatalog(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"exact", []string{"Soumettre"}, []string{"exact 10001", "en: Submit", "fr: Soumettre"}},
		{"close", []string{"Submit", "form"}, []string{"close", "10001 (0.50) [en] Submit"}},
		{"none", []string{"zzz"}, []string{"none"}},
		{"linked", []string{"--id", "10002.0"}, []string{"linked 10002", "fr: Bonjour ###name###"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, append([]string{"--config", configFile, "match"}, tc.args...)...)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCLI_DetectJSON(t *testing.T) {
	dir, configFile := setupCatalog(t)
	input := writeItems(t, dir, `[
		{"multilanId": "10001", "text": "Soumettre"},
		{"multilanId": "10002", "text": "Bonjour ###name###"},
		{"multilanId": "10001", "text": "Submit"}]`)

	out := run(t, "--config", configFile, "--json", "detect", "--input", input)

	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "fr", res["language"])
}

func TestCLI_StatsStatusOrder(t *testing.T) {
	dir := t.TempDir()
	catalog := `[
		{"id": 1, "multilanTextList": [{"languageId": 1, "wording": "One", "status": "VALIDATED"}]},
		{"id": 2, "multilanTextList": [{"languageId": 1, "wording": "Two", "status": "DRAFT"}]},
		{"id": 3, "multilanTextList": [{"languageId": 1, "wording": "Three", "status": "TRANSLATED"}]}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page-0.json"), []byte(catalog), 0644))

	configFile := filepath.Join(t.TempDir(), "multilan.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: error\n"), 0644))

	out := run(t, "--catalog", dir, "--config", configFile, "stats")

	draft := strings.Index(out, "DRAFT: 1")
	translated := strings.Index(out, "TRANSLATED: 1")
	validated := strings.Index(out, "VALIDATED: 1")
	require.True(t, draft >= 0 && translated >= 0 && validated >= 0, out)
	assert.Less(t, draft, translated)
	assert.Less(t, translated, validated)
}
