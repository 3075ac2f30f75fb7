package platform_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/multilan/internal/config"
	"github.com/aretw0/multilan/internal/platform"
	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/adapters/fs"
	"github.com/aretw0/multilan/pkg/catalog"
	"github.com/aretw0/multilan/pkg/core"
)

const listJSON = `[{"id": 10001, "multilanTextList": [
	{"languageId": 1, "wording": "Submit"},
	{"languageId": 2, "wording": "Soumettre"}]}]`

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNew_LoadsCatalogDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(listJSON), 0644))

	svc, err := platform.New(dir, platform.WithLogger(quietLogger()), platform.WithSearchLimit(5))
	require.NoError(t, err)

	store, err := svc.Store()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, format.FormatList, store.Source())
	assert.Equal(t, 5, svc.SearchLimit())

	state := svc.State().(catalog.ServiceState)
	loader, ok := state.Loader.(fs.SourceState)
	require.True(t, ok)
	assert.Equal(t, dir, loader.Path)
}

func TestNew_SkipsConfigFileInCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.json"), []byte(listJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, platform.ConfigFile), []byte("match:\n  search_limit: 5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("log:\n  level: debug\n"), 0644))

	svc, err := platform.New(dir,
		platform.WithLogger(quietLogger()),
		platform.WithExclude(filepath.Join(dir, "other.yaml")),
	)
	require.NoError(t, err)

	store, err := svc.Store()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())
}

func TestNew_MissingCatalogFails(t *testing.T) {
	_, err := platform.New(filepath.Join(t.TempDir(), "absent"), platform.WithLogger(quietLogger()))
	assert.ErrorIs(t, err, core.ErrNoCatalog)
}

func TestNew_LazyLoad(t *testing.T) {
	svc, err := platform.New(filepath.Join(t.TempDir(), "absent"),
		platform.WithLogger(quietLogger()),
		platform.WithLazyLoad(true),
	)
	require.NoError(t, err)

	_, err = svc.Store()
	assert.ErrorIs(t, err, core.ErrNotLoaded)
}

func TestNew_InjectedLoader(t *testing.T) {
	loader := core.LoaderFunc(func(context.Context) (core.TranslationDataPort, error) {
		p, err := format.ParseJSON([]byte(listJSON))
		if err != nil {
			return nil, err
		}
		return format.NewListAdapter(p)
	})

	svc, err := platform.New("ignored",
		platform.WithLoader(loader),
		platform.WithLogger(quietLogger()),
		platform.WithFuzzyThreshold(0.6),
		platform.WithSuggestionLimit(2),
		platform.WithOverflowMultiplier(1.5),
	)
	require.NoError(t, err)

	assert.Equal(t, 0.6, svc.Matcher().Options().FuzzyThreshold)
	assert.Equal(t, 2, svc.Matcher().Options().SuggestionLimit)
	assert.Equal(t, 1.5, svc.OverflowMultiplier())

	res, err := svc.BulkMatch([]core.Candidate{{Identity: "a", Text: "Soumettre"}})
	require.NoError(t, err)
	assert.Len(t, res.ExactMatches, 1)
}

func TestNew_CustomPatternAndSerializer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.data"), []byte(listJSON), 0644))

	svc, err := platform.New(dir,
		platform.WithLogger(quietLogger()),
		platform.WithPattern("*.data"),
		platform.WithSerializer(".data", fs.NewJSONSerializer()),
	)
	require.NoError(t, err)

	store, err := svc.Store()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Count())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		Catalog: config.CatalogConfig{Path: ".", Pattern: "**/*.json", Debounce: 50 * time.Millisecond},
		Match:   config.MatchConfig{FuzzyThreshold: 0.5, SuggestionLimit: 4, SearchLimit: 7, OverflowMultiplier: 1.3},
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(listJSON), 0644))

	opts := append(platform.OptionsFromConfig(cfg), platform.WithLogger(quietLogger()))
	svc, err := platform.New(dir, opts...)
	require.NoError(t, err)

	assert.Equal(t, 0.5, svc.Matcher().Options().FuzzyThreshold)
	assert.Equal(t, 4, svc.Matcher().Options().SuggestionLimit)
	assert.Equal(t, 7, svc.SearchLimit())
	assert.Equal(t, 1.3, svc.OverflowMultiplier())
}
