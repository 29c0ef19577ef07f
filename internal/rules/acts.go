package rules

import "github.com/equicourt/complaint-cli/internal/model"

var acts = func() []model.LegalAct {
	var t []model.LegalAct
	mustLoad("acts.yaml", &t)
	return t
}()

// Acts returns the legal acts catalogue. Callers must not modify the
// returned slice.
func Acts() []model.LegalAct {
	return acts
}

var ipcbns = func() map[string]model.SectionComparison {
	var t map[string]model.SectionComparison
	mustLoad("ipcbns.yaml", &t)
	return t
}()

// Comparison returns the IPC-BNS mapping for an IPC section code.
func Comparison(code string) (model.SectionComparison, bool) {
	c, ok := ipcbns[code]
	return c, ok
}

// ComparisonCount returns the number of mapped IPC sections.
func ComparisonCount() int {
	return len(ipcbns)
}
