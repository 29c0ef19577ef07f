package rules

import "github.com/equicourt/complaint-cli/internal/model"

type firTable struct {
	checklists       map[model.Category][]string
	defaultChecklist []string
	actions          map[model.SeverityLevel][]string
	defaultActions   []string
}

var fir = func() firTable {
	var raw struct {
		EvidenceChecklists map[model.Category][]string      `yaml:"evidence_checklists"`
		DefaultChecklist   []string                         `yaml:"default_checklist"`
		RecommendedActions map[model.SeverityLevel][]string `yaml:"recommended_actions"`
		DefaultActions     []string                         `yaml:"default_actions"`
	}
	mustLoad("fir.yaml", &raw)
	return firTable{
		checklists:       raw.EvidenceChecklists,
		defaultChecklist: raw.DefaultChecklist,
		actions:          raw.RecommendedActions,
		defaultActions:   raw.DefaultActions,
	}
}()

// EvidenceChecklist returns the draft evidence checklist for a category.
func EvidenceChecklist(c model.Category) []string {
	if l, ok := fir.checklists[c]; ok {
		return l
	}
	return fir.defaultChecklist
}

// RecommendedActions returns the draft action list for a severity level.
// Critical falls back to the default list; the action tables only grade
// High, Medium and Low.
func RecommendedActions(l model.SeverityLevel) []string {
	if a, ok := fir.actions[l]; ok {
		return a
	}
	return fir.defaultActions
}
