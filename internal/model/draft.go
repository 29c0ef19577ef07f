package model

import "time"

// ComplainantInfo carries the details needed to fill an FIR draft. Any field
// left empty renders as a blank line for the complainant to fill by hand.
type ComplainantInfo struct {
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	Contact       string `json:"contact,omitempty"`
	PoliceStation string `json:"police_station,omitempty"`
	District      string `json:"district,omitempty"`
	State         string `json:"state,omitempty"`
	IncidentDate  string `json:"incident_date,omitempty"`
	IncidentTime  string `json:"incident_time,omitempty"`
	IncidentPlace string `json:"incident_place,omitempty"`
}

// FIRDraft is a generated first information report ready for review.
type FIRDraft struct {
	Text               string        `json:"text"`
	Category           Category      `json:"category"`
	SeverityLevel      SeverityLevel `json:"severity_level"`
	SeverityScore      int           `json:"severity_score"`
	IPCSections        []SectionRef  `json:"ipc_sections"`
	EvidenceChecklist  []string      `json:"evidence_checklist"`
	RecommendedActions []string      `json:"recommended_actions"`
	GeneratedAt        time.Time     `json:"generated_at"`
	DocumentType       string        `json:"document_type"`
}
