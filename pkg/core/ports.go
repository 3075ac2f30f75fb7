package core

import "context"

// TranslationDataPort is implemented by every format adapter.
// Adhering to this interface keeps the engine independent of the upstream
// payload shape.
type TranslationDataPort interface {
	// TranslationMap returns the canonical translations.
	TranslationMap() *TranslationMap

	// MetadataMap returns the (possibly sparse) metadata.
	MetadataMap() MetadataMap

	// TranslationCount is always TranslationMap().Len().
	TranslationCount() int

	// SourceIdentifier names the format (and origin) the data came from.
	SourceIdentifier() string
}

// Loader produces a fresh TranslationDataPort, e.g. by reading catalog files.
type Loader interface {
	Load(ctx context.Context) (TranslationDataPort, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) (TranslationDataPort, error)

func (f LoaderFunc) Load(ctx context.Context) (TranslationDataPort, error) {
	return f(ctx)
}
