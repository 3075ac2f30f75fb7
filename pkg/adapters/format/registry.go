package format

import (
	"fmt"

	"github.com/aretw0/multilan/pkg/core"
)

// Registration binds a format name to its predicate and factory.
type Registration struct {
	Name     string
	Expected string
	Match    func(Payload) bool
	New      func(Payload) (core.TranslationDataPort, error)
	// Merge combines several payloads of this format into one.
	Merge func([]Payload) (Payload, error)
}

// Registry is an ordered list of format registrations. Detection tries them
// in order and the first match wins.
type Registry struct {
	entries []Registration
}

// NewRegistry creates a registry with the given registrations, in order.
func NewRegistry(regs ...Registration) *Registry {
	r := &Registry{}
	for _, reg := range regs {
		r.Register(reg)
	}
	return r
}

// DefaultRegistry returns the built-in formats: page first, then list.
func DefaultRegistry() *Registry {
	return NewRegistry(PageRegistration(), ListRegistration())
}

// PageRegistration describes the paginated response format.
func PageRegistration() Registration {
	return Registration{
		Name:     FormatPage,
		Expected: pageExpected,
		Match:    MatchPage,
		New: func(p Payload) (core.TranslationDataPort, error) {
			return NewPageAdapter(p)
		},
		Merge: mergePagePayloads,
	}
}

// ListRegistration describes the flat array format.
func ListRegistration() Registration {
	return Registration{
		Name:     FormatList,
		Expected: listExpected,
		Match:    MatchList,
		New: func(p Payload) (core.TranslationDataPort, error) {
			return NewListAdapter(p)
		},
		Merge: mergeListPayloads,
	}
}

// Register appends reg. A registration with an existing name replaces it in place.
func (r *Registry) Register(reg Registration) {
	for i, existing := range r.entries {
		if existing.Name == reg.Name {
			r.entries[i] = reg
			return
		}
	}
	r.entries = append(r.entries, reg)
}

// Names lists the registered formats in detection order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Detect returns the first registration whose predicate accepts p.
func (r *Registry) Detect(p Payload) (Registration, error) {
	for _, e := range r.entries {
		if e.Match != nil && e.Match(p) {
			return e, nil
		}
	}
	return Registration{}, core.ErrNoAdapter
}

// Build detects the format of p and constructs its adapter.
func (r *Registry) Build(p Payload) (core.TranslationDataPort, error) {
	reg, err := r.Detect(p)
	if err != nil {
		return nil, err
	}
	port, err := reg.New(p)
	if err != nil {
		return nil, fmt.Errorf("build %s adapter: %w", reg.Name, err)
	}
	return port, nil
}
