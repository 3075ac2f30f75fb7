package format

import (
	"encoding/json"

	"github.com/aretw0/multilan/pkg/core"
)

// FormatPage is the paginated search response.
const FormatPage = "multilan-page"

const pageExpected = "object with resultList: array of {multilan: record, mostRelevantMultilanTextId?: integer}"

// PageItem is one element of a page result list.
type PageItem struct {
	Multilan           Record      `json:"multilan"`
	MostRelevantTextID json.Number `json:"mostRelevantMultilanTextId,omitempty"`
}

// Page is one fetched page of the paginated response.
type Page struct {
	ResultList       []PageItem `json:"resultList"`
	PageNumber       int        `json:"pageNumber"`
	PageSize         int        `json:"pageSize"`
	NumberOfElements int        `json:"numberOfElements"`
	TotalElements    int        `json:"totalElements"`
	TotalPages       int        `json:"totalPages"`
}

// PageAdapter adapts a (possibly merged) paginated response.
type PageAdapter struct {
	page Page
	tm   *core.TranslationMap
	md   core.MetadataMap
}

// MatchPage reports whether p has the paginated shape.
func MatchPage(p Payload) bool {
	return pageSchema.Validate(p.Value()) == nil
}

// NewPageAdapter validates p and builds the canonical maps. The most relevant
// text hint of each item selects the entry metadata is derived from.
func NewPageAdapter(p Payload) (*PageAdapter, error) {
	if err := validate(pageSchema, p, FormatPage, pageExpected); err != nil {
		return nil, err
	}
	var page Page
	if err := p.Decode(&page); err != nil {
		return nil, &core.FormatError{Format: FormatPage, Expected: pageExpected, Issues: []string{err.Error()}}
	}

	hinted := make([]hintedRecord, len(page.ResultList))
	for i, item := range page.ResultList {
		hinted[i] = hintedRecord{record: item.Multilan, hint: item.MostRelevantTextID}
	}
	tm, md := buildMaps(hinted)
	return &PageAdapter{page: page, tm: tm, md: md}, nil
}

func (a *PageAdapter) TranslationMap() *core.TranslationMap { return a.tm }
func (a *PageAdapter) MetadataMap() core.MetadataMap        { return a.md }
func (a *PageAdapter) TranslationCount() int                { return a.tm.Len() }
func (a *PageAdapter) SourceIdentifier() string             { return FormatPage }

// Page returns the decoded page, including its counters.
func (a *PageAdapter) Page() Page { return a.page }

// MergePages combines pages fetched from the same query. Result lists are
// concatenated and NumberOfElements summed; TotalElements, TotalPages,
// PageSize and PageNumber come from the first page only. Partial merges are
// never rejected.
func MergePages(pages ...Page) Page {
	if len(pages) == 0 {
		return Page{ResultList: []PageItem{}}
	}
	merged := Page{
		ResultList:    make([]PageItem, 0, len(pages[0].ResultList)*len(pages)),
		PageNumber:    pages[0].PageNumber,
		PageSize:      pages[0].PageSize,
		TotalElements: pages[0].TotalElements,
		TotalPages:    pages[0].TotalPages,
	}
	for _, p := range pages {
		merged.ResultList = append(merged.ResultList, p.ResultList...)
		merged.NumberOfElements += p.NumberOfElements
	}
	return merged
}

var _ core.TranslationDataPort = (*PageAdapter)(nil)
