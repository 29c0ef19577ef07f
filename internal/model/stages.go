package model

// Substitution records one colloquial-to-legal term replacement applied
// during normalization.
type Substitution struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
}

// NormalizationResult is the output of the dialect normalization stage.
type NormalizationResult struct {
	OriginalText    string         `json:"original_text"`
	NormalizedText  string         `json:"normalized_text"`
	DialectDetected string         `json:"dialect_detected"`
	Changes         []Substitution `json:"normalization_applied"`
	Confidence      float64        `json:"confidence"`
}

// Classification is the output of the complaint classification stage.
// ModelVersion identifies provenance: the remote model tag or the fallback
// keyword engine tag.
type Classification struct {
	Category     Category   `json:"category"`
	Confidence   float64    `json:"confidence"`
	Subcategory  string     `json:"subcategory,omitempty"`
	Alternatives []Category `json:"alternative_categories"`
	ModelVersion string     `json:"model_version"`
}

// SeverityFactor is one contributing factor detected in the complaint text.
type SeverityFactor struct {
	Name    string  `json:"factor"`
	Weight  float64 `json:"weight"`
	Present bool    `json:"present"`
}

// SeverityAssessment is the output of the severity scoring stage.
// Fallback scores are capped at 95; remote scores may reach 100.
type SeverityAssessment struct {
	Score          int              `json:"score"`
	Level          SeverityLevel    `json:"level"`
	Factors        []SeverityFactor `json:"factors"`
	SuggestedIPC   []string         `json:"suggested_ipc"`
	RiskAssessment string           `json:"risk_assessment"`
}

// SectionRef references one statutory section with its punishment text.
type SectionRef struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Punishment  string `json:"punishment"`
}

// LegalMapping is the output of the legal mapping stage: the IPC and BNS
// sections applicable to a category plus filing requirements.
type LegalMapping struct {
	IPCSections       []SectionRef `json:"ipc_sections" yaml:"ipc_sections"`
	BNSSections       []SectionRef `json:"bns_sections" yaml:"bns_sections"`
	EvidenceChecklist []string     `json:"evidence_checklist" yaml:"evidence_checklist"`
	RequiredDocuments []string     `json:"required_documents" yaml:"required_documents"`
}

// Highlight marks one keyword occurrence in the original complaint text.
// Start and End are byte offsets into the original (non-normalized) text,
// with Start < End always.
type Highlight struct {
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
	Reason  string  `json:"reason"`
}

// Explanation is the output of the explanation stage: keyword highlights
// grounding the classification decision.
type Explanation struct {
	Highlights           []Highlight    `json:"highlights"`
	ConfidenceFactors    []string       `json:"confidence_factors"`
	NormalizationChanges []Substitution `json:"normalization_changes"`
}

// TimelineStage is one procedural stage with its expected day range.
type TimelineStage struct {
	Stage string `json:"stage"`
	Days  string `json:"days"`
}

// TimelinePrediction is the output of the timeline prediction stage.
type TimelinePrediction struct {
	EstimatedDays int             `json:"estimated_days"`
	Confidence    float64         `json:"confidence"`
	Factors       []string        `json:"factors"`
	Stages        []TimelineStage `json:"stages"`
}

// CorruptionRiskAssessment is the output of the corruption risk stage.
type CorruptionRiskAssessment struct {
	RiskScore         float64   `json:"risk_score"`
	RiskLevel         RiskLevel `json:"risk_level"`
	Recommendations   []string  `json:"recommendations"`
	FactorsConsidered []string  `json:"factors_considered"`
}
