package format

import (
	"github.com/aretw0/multilan/pkg/core"
)

// FormatList is the flat array of records.
const FormatList = "multilan-list"

const listExpected = "array of {id: integer, multilanTextList: array}"

// ListAdapter adapts a flat array of records.
type ListAdapter struct {
	records []Record
	tm      *core.TranslationMap
	md      core.MetadataMap
}

// MatchList reports whether p has the flat list shape.
func MatchList(p Payload) bool {
	return listSchema.Validate(p.Value()) == nil
}

// NewListAdapter validates p and builds the canonical maps.
func NewListAdapter(p Payload) (*ListAdapter, error) {
	if err := validate(listSchema, p, FormatList, listExpected); err != nil {
		return nil, err
	}
	var records []Record
	if err := p.Decode(&records); err != nil {
		return nil, &core.FormatError{Format: FormatList, Expected: listExpected, Issues: []string{err.Error()}}
	}

	hinted := make([]hintedRecord, len(records))
	for i, r := range records {
		hinted[i] = hintedRecord{record: r}
	}
	tm, md := buildMaps(hinted)
	return &ListAdapter{records: records, tm: tm, md: md}, nil
}

func (a *ListAdapter) TranslationMap() *core.TranslationMap { return a.tm }
func (a *ListAdapter) MetadataMap() core.MetadataMap        { return a.md }
func (a *ListAdapter) TranslationCount() int                { return a.tm.Len() }
func (a *ListAdapter) SourceIdentifier() string             { return FormatList }

// Records returns the decoded upstream records.
func (a *ListAdapter) Records() []Record { return a.records }

var _ core.TranslationDataPort = (*ListAdapter)(nil)
