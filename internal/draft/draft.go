// Package draft renders FIR (first information report) documents from a
// processed complaint. The output is plain text suitable for printing or
// attaching to a police station submission.
package draft

import (
	"strings"
	"text/template"
	"time"

	"github.com/rotisserie/eris"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/rules"
)

const firTemplate = `
FIR DRAFT - EQUICOURT GENERATED

Police Station: {{.PoliceStation}}
District: {{.District}}
State: {{.State}}

FIR No: ______________
Date: {{.CurrentDate}}

COMPLAINANT INFORMATION:
Name: {{.ComplainantName}}
Address: {{.ComplainantAddress}}
Contact: {{.ComplainantContact}}

COMPLAINT DETAILS:
Date of Incident: {{.IncidentDate}}
Time of Incident: {{.IncidentTime}}
Place of Occurrence: {{.IncidentPlace}}

NARRATIVE:
{{.ComplaintText}}

CATEGORIZATION:
Legal Category: {{.Category}}
Severity Level: {{.SeverityLevel}}
Severity Score: {{.SeverityScore}}/100

APPLICABLE IPC SECTIONS:
{{.IPCSections}}

EVIDENCE CHECKLIST:
{{.EvidenceChecklist}}

RECOMMENDED ACTIONS:
{{.RecommendedActions}}

Complainant Signature: __________________

Station House Officer Signature: __________________
Date: {{.CurrentDate}}
`

var firTmpl = template.Must(template.New("fir").Parse(firTemplate))

type firData struct {
	PoliceStation      string
	District           string
	State              string
	CurrentDate        string
	ComplainantName    string
	ComplainantAddress string
	ComplainantContact string
	IncidentDate       string
	IncidentTime       string
	IncidentPlace      string
	ComplaintText      string
	Category           model.Category
	SeverityLevel      model.SeverityLevel
	SeverityScore      int
	IPCSections        string
	EvidenceChecklist  string
	RecommendedActions string
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func bulleted(prefix string, items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, prefix+item)
	}
	return strings.Join(lines, "\n")
}

// Generate produces an FIR draft from a processed complaint. The complaint
// must carry its pipeline envelope; classification, severity and legal
// mapping results feed the document.
func Generate(c *model.Complaint, info model.ComplainantInfo, now time.Time) (*model.FIRDraft, error) {
	if c == nil || c.Envelope == nil {
		return nil, eris.New("draft: complaint has no processing results")
	}
	env := c.Envelope

	category := env.Classification.Category
	sections := env.Legal.IPCSections
	checklist := rules.EvidenceChecklist(category)
	actions := rules.RecommendedActions(env.Severity.Level)

	sectionLines := make([]string, 0, len(sections))
	for _, s := range sections {
		sectionLines = append(sectionLines, "- IPC "+s.Code)
	}

	data := firData{
		PoliceStation:      orDefault(info.PoliceStation, "Local Police Station"),
		District:           orDefault(info.District, "Your District"),
		State:              orDefault(info.State, "Your State"),
		CurrentDate:        now.Format("2006-01-02"),
		ComplainantName:    orDefault(info.Name, "Complainant Name"),
		ComplainantAddress: orDefault(info.Address, "Complainant Address"),
		ComplainantContact: orDefault(info.Contact, "Contact Information"),
		IncidentDate:       orDefault(info.IncidentDate, "Date of incident"),
		IncidentTime:       orDefault(info.IncidentTime, "Time of incident"),
		IncidentPlace:      orDefault(info.IncidentPlace, "Place of occurrence"),
		ComplaintText:      c.Text,
		Category:           category,
		SeverityLevel:      env.Severity.Level,
		SeverityScore:      env.Severity.Score,
		IPCSections:        strings.Join(sectionLines, "\n"),
		EvidenceChecklist:  bulleted("- ", checklist),
		RecommendedActions: bulleted("- ", actions),
	}

	var sb strings.Builder
	if err := firTmpl.Execute(&sb, data); err != nil {
		return nil, eris.Wrap(err, "draft: render template")
	}

	return &model.FIRDraft{
		Text:               sb.String(),
		Category:           category,
		SeverityLevel:      env.Severity.Level,
		SeverityScore:      env.Severity.Score,
		IPCSections:        sections,
		EvidenceChecklist:  checklist,
		RecommendedActions: actions,
		GeneratedAt:        now.UTC(),
		DocumentType:       "FIR Draft",
	}, nil
}
