package model

import "time"

// Pipeline step names as recorded in the envelope's completion list.
const (
	StepNormalization  = "dialect_normalization"
	StepClassification = "complaint_classification"
	StepSeverity       = "severity_scoring"
	StepLegalMapping   = "legal_mapping"
	StepExplanation    = "xai_explanation"
	StepTimeline       = "timeline_prediction"
	StepCorruption     = "corruption_assessment"

	// StepFallbackProcessing replaces the per-stage list when the whole
	// pipeline switched to the all-fallback path.
	StepFallbackProcessing = "fallback_processing"
)

// AllSteps returns the seven stage names in execution order.
func AllSteps() []string {
	return []string{
		StepNormalization,
		StepClassification,
		StepSeverity,
		StepLegalMapping,
		StepExplanation,
		StepTimeline,
		StepCorruption,
	}
}

// PipelineStatus records how a submission moved through the pipeline.
// FallbackMode is true when any stage degraded to its local fallback;
// StepsDegraded names those stages.
type PipelineStatus struct {
	StepsCompleted []string `json:"steps_completed"`
	Success        bool     `json:"success"`
	FallbackMode   bool     `json:"fallback_mode,omitempty"`
	StepsDegraded  []string `json:"steps_degraded,omitempty"`
}

// Metadata describes the processed submission.
type Metadata struct {
	OriginalLanguage LanguageCode `json:"original_language"`
	ProcessedAt      time.Time    `json:"processed_at"`
	TextLength       int          `json:"text_length"`
}

// Envelope aggregates every stage result for one complaint submission.
// It is constructed fresh per submission and immutable once returned.
// Every stage field is populated even in fallback mode.
type Envelope struct {
	Pipeline       PipelineStatus           `json:"pipeline"`
	Normalized     NormalizationResult      `json:"normalized"`
	Classification Classification           `json:"classification"`
	Severity       SeverityAssessment       `json:"severity"`
	Legal          LegalMapping             `json:"legal"`
	Explanation    Explanation              `json:"explanation"`
	Timeline       TimelinePrediction       `json:"timeline"`
	CorruptionRisk CorruptionRiskAssessment `json:"corruption_risk"`
	Metadata       Metadata                 `json:"metadata"`
}

// Complaint is a processed submission as persisted in the history store.
type Complaint struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Language  LanguageCode `json:"language"`
	Envelope  *Envelope    `json:"envelope"`
	CreatedAt time.Time    `json:"created_at"`
}
