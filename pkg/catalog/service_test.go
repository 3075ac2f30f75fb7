package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/catalog"
	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/linking"
)

const catalogJSON = `[
	{"id": 10001, "multilanTextList": [
		{"id": 1, "languageId": 1, "wording": "Submit", "status": "VALIDATED"},
		{"id": 2, "languageId": 2, "wording": "Soumettre"}]},
	{"id": 10002, "multilanTextList": [
		{"id": 3, "languageId": 1, "wording": "Cancel"},
		{"id": 4, "languageId": 2, "wording": "Annuler"}]},
	{"id": 10003, "multilanTextList": [
		{"id": 5, "languageId": 1, "wording": "Hello ###name###"},
		{"id": 6, "languageId": 2, "wording": "Bonjour ###name###"}]}
]`

func listLoader(t *testing.T, src string) core.Loader {
	t.Helper()
	return core.LoaderFunc(func(context.Context) (core.TranslationDataPort, error) {
		p, err := format.ParseJSON([]byte(src))
		if err != nil {
			return nil, err
		}
		return format.NewListAdapter(p)
	})
}

func loaded(t *testing.T, config catalog.Config) *catalog.Service {
	t.Helper()
	svc := catalog.NewService(listLoader(t, catalogJSON), config)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	return svc
}

func TestService_NotLoaded(t *testing.T) {
	svc := catalog.NewService(listLoader(t, catalogJSON), catalog.Config{})

	_, err := svc.Store()
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	_, err = svc.Search("Submit")
	assert.ErrorIs(t, err, core.ErrNotLoaded)
	_, err = svc.BulkMatch(nil)
	assert.ErrorIs(t, err, core.ErrNotLoaded)

	state := svc.State().(catalog.ServiceState)
	assert.False(t, state.Loaded)
	assert.Equal(t, "catalog", svc.ComponentType())
}

func TestService_ReloadSwapsStore(t *testing.T) {
	svc := loaded(t, catalog.Config{})

	first, err := svc.Store()
	require.NoError(t, err)
	assert.Equal(t, 3, first.Count())
	assert.Equal(t, format.FormatList, first.Source())

	second, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Generation(), second.Generation())

	current, err := svc.Store()
	require.NoError(t, err)
	assert.Same(t, second, current)

	state := svc.State().(catalog.ServiceState)
	assert.True(t, state.Loaded)
	assert.Equal(t, int64(2), state.Reloads)
	assert.Equal(t, 3, state.Translations)
	assert.Equal(t, 1, state.MetadataEntries)
}

func TestService_FailedReloadKeepsStore(t *testing.T) {
	var fail atomic.Bool
	good := listLoader(t, catalogJSON)
	svc := catalog.NewService(core.LoaderFunc(func(ctx context.Context) (core.TranslationDataPort, error) {
		if fail.Load() {
			return nil, errors.New("disk on fire")
		}
		return good.Load(ctx)
	}), catalog.Config{})

	before, err := svc.Reload(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	_, err = svc.Reload(context.Background())
	require.Error(t, err)

	after, err := svc.Store()
	require.NoError(t, err)
	assert.Same(t, before, after)

	state := svc.State().(catalog.ServiceState)
	assert.Equal(t, int64(1), state.Failures)
	assert.Contains(t, state.LastError, "disk on fire")
}

func TestService_Operations(t *testing.T) {
	svc := loaded(t, catalog.Config{SearchLimit: 1})

	hits, err := svc.Search("Submit")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, core.CanonicalID("10001"), hits[0].ID)

	global, err := svc.GlobalSearch("10003")
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, 1.0, global[0].Score)
	require.Len(t, global[0].VariableOccurrences, 1)
	assert.Equal(t, "name", global[0].VariableOccurrences[0].Name)

	bulk, err := svc.BulkMatch([]core.Candidate{{Identity: "a", Text: "Annuler"}, {Identity: "b", Text: "zzz"}})
	require.NoError(t, err)
	assert.Len(t, bulk.ExactMatches, 1)
	assert.Len(t, bulk.Unmatched, 1)

	c, err := svc.DetectMatch(core.Candidate{Text: "Soumettre"})
	require.NoError(t, err)
	assert.Equal(t, core.MatchExact, c.Kind)
	assert.Equal(t, core.CanonicalID("10001"), c.ID)

	lang, err := svc.DetectLanguage([]linking.LinkedText{{ID: "10001", Text: "Soumettre"}, {ID: "10002", Text: "Annuler"}})
	require.NoError(t, err)
	assert.Equal(t, core.LangFR, lang)

	plan, err := svc.PlanSwitch([]linking.SwitchItem{
		{Identity: "n1", ID: "10003", Values: map[string]string{"name": "Ada"}},
		{Identity: "n2", ID: "99999"},
	}, core.LangFR)
	require.NoError(t, err)
	require.Len(t, plan.Changes, 1)
	assert.Equal(t, "Bonjour Ada", plan.Changes[0].Text)
	assert.Equal(t, []core.CanonicalID{"99999"}, plan.Result.Missing)

	assert.True(t, svc.RecordOverflow(&plan.Result, "10003", 100, 121))
	assert.False(t, svc.RecordOverflow(&plan.Result, "10001", 100, 120))
	assert.Equal(t, []core.CanonicalID{"10003"}, plan.Result.Overflow)

	_, err = svc.PlanSwitch(nil, core.LanguageCode("es"))
	assert.Error(t, err)
}

func TestService_Defaults(t *testing.T) {
	svc := catalog.NewService(listLoader(t, catalogJSON), catalog.Config{Matcher: linking.DefaultOptions()})
	assert.Equal(t, linking.DefaultOverflowMultiplier, svc.OverflowMultiplier())
	assert.Equal(t, 0, svc.SearchLimit())
	assert.Equal(t, linking.DefaultFuzzyThreshold, svc.Matcher().Options().FuzzyThreshold)
}

// watchLoader triggers onChange on demand.
type watchLoader struct {
	core.Loader
	mu       sync.Mutex
	onChange func(context.Context)
	ctx      context.Context
}

func (w *watchLoader) Watch(ctx context.Context, onChange func(context.Context)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ctx = ctx
	w.onChange = onChange
	return nil
}

func (w *watchLoader) fire() {
	w.mu.Lock()
	ctx, fn := w.ctx, w.onChange
	w.mu.Unlock()
	fn(ctx)
}

func TestService_Watch(t *testing.T) {
	var fail atomic.Bool
	base := listLoader(t, catalogJSON)
	loader := &watchLoader{Loader: core.LoaderFunc(func(ctx context.Context) (core.TranslationDataPort, error) {
		if fail.Load() {
			return nil, errors.New("bad page")
		}
		return base.Load(ctx)
	})}

	var handled atomic.Int32
	svc := catalog.NewService(loader, catalog.Config{ErrorHandler: func(error) { handled.Add(1) }})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := svc.Watch(ctx)
	require.NoError(t, err)

	loader.fire()
	ev := <-events
	require.NoError(t, ev.Err)
	assert.Equal(t, 3, ev.Translations)
	assert.Equal(t, format.FormatList, ev.Source)
	assert.NotEmpty(t, ev.Generation)

	fail.Store(true)
	loader.fire()
	ev = <-events
	assert.Error(t, ev.Err)
	assert.Equal(t, int32(1), handled.Load())

	_, err = svc.Store()
	assert.NoError(t, err, "failed reload keeps the previous store")

	cancel()
	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}

func TestService_WatchUnsupported(t *testing.T) {
	svc := catalog.NewService(listLoader(t, catalogJSON), catalog.Config{})
	_, err := svc.Watch(context.Background())
	assert.Error(t, err)
}
