package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/multilan/pkg/adapters/format"
	"github.com/aretw0/multilan/pkg/core"
)

// DefaultPattern matches every supported catalog file below the root.
const DefaultPattern = "**/*.{json,yaml,yml}"

// MergedSuffix marks files written by a merge. Discovery always skips them
// so a merged copy inside the catalog is never read back as another page.
const MergedSuffix = ".merged.json"

// DefaultDebounce is the quiet period before a burst of changes triggers a reload.
const DefaultDebounce = 100 * time.Millisecond

// Config holds the configuration for a filesystem catalog source.
type Config struct {
	// Path is a catalog directory or a single catalog file.
	Path    string
	Pattern string // doublestar glob relative to Path
	// Exclude lists files discovery skips: doublestar globs relative to Path,
	// or absolute file paths.
	Exclude      []string
	Registry     *format.Registry
	Serializers  map[string]Serializer
	Logger       *slog.Logger
	Debounce     time.Duration
	ErrorHandler func(error)
}

// Source loads catalog pages from disk. Every matching file is decoded by
// extension, the payloads are merged and the result goes through format
// detection. It implements core.Loader.
type Source struct {
	Path   string
	config Config
	cache  *cache

	mu            sync.RWMutex
	files         []string
	lastLoad      *time.Time
	watcherActive bool
}

// NewSource creates a filesystem catalog source, filling unset fields with defaults.
func NewSource(config Config) *Source {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Registry == nil {
		config.Registry = format.DefaultRegistry()
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	config.Exclude = append(slices.Clone(config.Exclude), "**/*"+MergedSuffix)
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return &Source{Path: config.Path, config: config, cache: newCache()}
}

// Files lists the catalog files in path order.
func (s *Source) Files() ([]string, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNoCatalog, s.Path)
		}
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}
	if !info.IsDir() {
		return []string{s.Path}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(s.Path), s.config.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", s.config.Pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := s.serializerFor(m); !ok {
			continue
		}
		path := filepath.Join(s.Path, filepath.FromSlash(m))
		if s.excluded(m, path) {
			continue
		}
		files = append(files, path)
	}
	slices.Sort(files)
	return files, nil
}

// Load reads, merges and adapts every catalog file.
func (s *Source) Load(ctx context.Context) (core.TranslationDataPort, error) {
	merged, files, err := s.merge(ctx)
	if err != nil {
		return nil, err
	}
	port, err := s.config.Registry.Build(merged)
	if err != nil {
		return nil, err
	}

	s.config.Logger.Debug("catalog files loaded", "path", s.Path, "files", len(files), "format", port.SourceIdentifier())
	s.recordLoad(files)
	return port, nil
}

// Merged returns the single payload every catalog file merges into.
func (s *Source) Merged(ctx context.Context) (format.Payload, error) {
	merged, _, err := s.merge(ctx)
	return merged, err
}

func (s *Source) merge(ctx context.Context) (format.Payload, []string, error) {
	files, err := s.Files()
	if err != nil {
		return format.Payload{}, nil, err
	}
	if len(files) == 0 {
		return format.Payload{}, nil, fmt.Errorf("%w: %s matches nothing under %s", core.ErrNoCatalog, s.config.Pattern, s.Path)
	}

	payloads := make([]format.Payload, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return format.Payload{}, nil, err
		}
		p, err := s.readFile(path)
		if err != nil {
			return format.Payload{}, nil, err
		}
		payloads = append(payloads, p)
	}
	s.cache.Prune(files)

	merged, err := format.MergePayloads(s.config.Registry, payloads)
	if err != nil {
		return format.Payload{}, nil, fmt.Errorf("failed to merge catalog files: %w", err)
	}
	return merged, files, nil
}

func (s *Source) readFile(path string) (format.Payload, error) {
	ser, ok := s.serializerFor(path)
	if !ok {
		return format.Payload{}, fmt.Errorf("no serializer for %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return format.Payload{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if p, ok := s.cache.Get(path, info.ModTime(), info.Size()); ok {
		return p, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return format.Payload{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ser.Parse(f)
	if err != nil {
		return format.Payload{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s.cache.Set(path, &cacheEntry{Payload: p, LastModified: info.ModTime(), Size: info.Size()})
	return p, nil
}

func (s *Source) serializerFor(path string) (Serializer, bool) {
	ser, ok := s.config.Serializers[strings.ToLower(filepath.Ext(path))]
	return ser, ok
}

// excluded reports whether a discovered file is on the exclude list. rel is
// the slash-separated path below the root.
func (s *Source) excluded(rel, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	for _, pattern := range s.config.Exclude {
		if filepath.IsAbs(pattern) {
			if filepath.Clean(pattern) == abs {
				return true
			}
			continue
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Contains reports whether path would be read as a catalog file of this source.
func (s *Source) Contains(path string) bool {
	return s.matches(path)
}

// matches reports whether a changed path is a catalog file of this source.
func (s *Source) matches(path string) bool {
	if _, ok := s.serializerFor(path); !ok {
		return false
	}
	root, err := filepath.Abs(s.Path)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == root {
		return true
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)
	if s.excluded(rel, abs) {
		return false
	}
	ok, err := doublestar.Match(s.config.Pattern, rel)
	return err == nil && ok
}

// Watch observes the catalog and calls onChange after each debounced burst of
// changes to matching files. Watching stops when ctx is cancelled.
func (s *Source) Watch(ctx context.Context, onChange func(context.Context)) error {
	w := newWatchWorker(s, onChange)
	if err := w.Start(ctx); err != nil {
		return err
	}
	w.stopOnDone(ctx)
	return nil
}

var _ core.Loader = (*Source)(nil)
