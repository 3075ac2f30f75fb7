package linking

import (
	"github.com/aretw0/multilan/pkg/core"
	"github.com/aretw0/multilan/pkg/variables"
)

// SwitchItem is a linked item to display in another language. Values holds
// the item's variable values keyed by occurrence key or bare name.
type SwitchItem struct {
	Identity string            `json:"identity"`
	ID       core.CanonicalID  `json:"multilanId"`
	Values   map[string]string `json:"values,omitempty"`
}

// TextChange is the new text for one item.
type TextChange struct {
	Identity string           `json:"identity"`
	ID       core.CanonicalID `json:"multilanId"`
	Text     string           `json:"text"`
}

// SwitchPlan lists the changes a host should apply. Result.Overflow stays
// empty until the host reports measurements via Result.RecordOverflow.
type SwitchPlan struct {
	Language core.LanguageCode `json:"language"`
	Changes  []TextChange      `json:"changes"`
	Result   core.SwitchResult `json:"result"`
}

// PlanSwitch resolves the target wording of every item, applying its
// variable values. IDs without a target wording are reported once in
// Result.Missing, in first-seen order.
func PlanSwitch(tm *core.TranslationMap, items []SwitchItem, target core.LanguageCode) SwitchPlan {
	plan := SwitchPlan{
		Language: target,
		Changes:  []TextChange{},
		Result:   core.SwitchResult{Missing: []core.CanonicalID{}, Overflow: []core.CanonicalID{}},
	}
	missing := make(map[core.CanonicalID]bool)

	for _, item := range items {
		wording, ok := tm.Wording(item.ID, target)
		if !ok {
			if !missing[item.ID] {
				missing[item.ID] = true
				plan.Result.Missing = append(plan.Result.Missing, item.ID)
			}
			continue
		}
		plan.Changes = append(plan.Changes, TextChange{
			Identity: item.Identity,
			ID:       item.ID,
			Text:     variables.Replace(wording, item.Values),
		})
		plan.Result.Success++
	}
	return plan
}
