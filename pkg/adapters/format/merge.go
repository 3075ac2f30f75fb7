package format

import (
	"fmt"

	"github.com/aretw0/multilan/pkg/core"
)

// MergePayloads merges payloads fetched for one catalog. Every payload must
// be detected as the same format; a single payload is returned unchanged.
func MergePayloads(reg *Registry, payloads []Payload) (Payload, error) {
	switch len(payloads) {
	case 0:
		return Payload{}, core.ErrNoCatalog
	case 1:
		return payloads[0], nil
	}

	first, err := reg.Detect(payloads[0])
	if err != nil {
		return Payload{}, err
	}
	for i, p := range payloads[1:] {
		other, err := reg.Detect(p)
		if err != nil {
			return Payload{}, fmt.Errorf("payload %d: %w", i+1, err)
		}
		if other.Name != first.Name {
			return Payload{}, fmt.Errorf("%w: %s and %s", core.ErrMixedFormats, first.Name, other.Name)
		}
	}
	if first.Merge == nil {
		return Payload{}, fmt.Errorf("format %s does not support merging", first.Name)
	}
	return first.Merge(payloads)
}

func mergePagePayloads(payloads []Payload) (Payload, error) {
	pages := make([]Page, 0, len(payloads))
	for i, p := range payloads {
		var page Page
		if err := p.Decode(&page); err != nil {
			return Payload{}, fmt.Errorf("decode page %d: %w", i, err)
		}
		pages = append(pages, page)
	}
	return FromValue(MergePages(pages...))
}

func mergeListPayloads(payloads []Payload) (Payload, error) {
	var records []Record
	for i, p := range payloads {
		var part []Record
		if err := p.Decode(&part); err != nil {
			return Payload{}, fmt.Errorf("decode list %d: %w", i, err)
		}
		records = append(records, part...)
	}
	if records == nil {
		records = []Record{}
	}
	return FromValue(records)
}
