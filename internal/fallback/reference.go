package fallback

import (
	"strings"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/rules"
)

// LegalActs returns the full acts catalogue.
func LegalActs() []model.LegalAct {
	return rules.Acts()
}

// SearchLegalActs filters the catalogue by a case-insensitive substring
// match on name, category or summary.
func SearchLegalActs(query string) []model.LegalAct {
	return FilterLegalActs(rules.Acts(), query)
}

// FilterLegalActs applies the catalogue search match to an arbitrary act
// list, so remotely fetched catalogues filter the same way as the local one.
func FilterLegalActs(acts []model.LegalAct, query string) []model.LegalAct {
	q := strings.ToLower(query)
	var out []model.LegalAct
	for _, act := range acts {
		if strings.Contains(strings.ToLower(act.Name), q) ||
			strings.Contains(strings.ToLower(act.Category), q) ||
			strings.Contains(strings.ToLower(act.Summary), q) {
			out = append(out, act)
		}
	}
	return out
}

// IPCBNSComparison maps an IPC section code to its BNS counterpart. Unknown
// sections get an explicit not-found comparison rather than an error.
func IPCBNSComparison(code string) model.SectionComparison {
	if c, ok := rules.Comparison(code); ok {
		return c
	}
	return model.SectionComparison{
		IPC: model.StatuteSection{
			Code:        code,
			Title:       "Section Not Found in IPC",
			Punishment:  "N/A",
			Description: "This section is not available in the Indian Penal Code",
		},
		BNS: model.StatuteSection{
			Code:        "Not Mapped",
			Title:       "Not Available in BNS",
			Punishment:  "N/A",
			Description: "This section has not been mapped to BNS",
			Changes:     []string{"No mapping available"},
			Year:        2023,
		},
		Comparison: model.ComparisonNotes{
			KeyChanges: []string{},
			Impact:     "No mapping available",
			Notes:      "Please check the section number",
		},
	}
}
