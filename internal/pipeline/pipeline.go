// Package pipeline runs the seven-stage complaint analysis sequence:
// normalization, classification, severity, legal mapping, explanation,
// timeline and corruption risk. Each stage tries the remote model service
// and degrades to the local fallback on any error, so processing never
// fails for the caller.
package pipeline

import (
	"context"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/equicourt/complaint-cli/internal/fallback"
	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/pkg/mlservice"
)

// Orchestrator drives the stage sequence against one model service client.
type Orchestrator struct {
	ml  mlservice.Client
	now func() time.Time
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithNow overrides the clock, for deterministic envelopes in tests.
func WithNow(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New creates an orchestrator backed by the given model service client.
func New(ml mlservice.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{ml: ml, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process analyses a complaint and always returns a complete envelope.
// Remote stage failures degrade to fallbacks silently (logged, flagged in
// the pipeline status). A defect that escapes a stage entirely is caught
// here and answered with the all-fallback envelope; that path is logged
// loudly because it means a bug, not remote unavailability.
func (o *Orchestrator) Process(ctx context.Context, text string, lang model.LanguageCode) (env *model.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("pipeline defect, switching to all-fallback processing",
				zap.Any("panic", r))
			env = o.fallbackAll(text, lang)
		}
	}()
	return o.run(ctx, text, lang)
}

func (o *Orchestrator) run(ctx context.Context, text string, lang model.LanguageCode) *model.Envelope {
	var degraded []string

	normalized := o.normalize(ctx, text, lang, &degraded)
	cls := o.classify(ctx, normalized.NormalizedText, &degraded)
	severity := o.severity(ctx, normalized.NormalizedText, cls.Category, &degraded)
	legal := o.legalMapping(ctx, cls.Category, &degraded)
	explanation := o.explain(ctx, text, normalized.NormalizedText, cls, &degraded)
	timeline := o.timeline(ctx, cls.Category, severity.Score, &degraded)
	risk := o.corruptionRisk(ctx, cls.Category, severity.Score, &degraded)

	return &model.Envelope{
		Pipeline: model.PipelineStatus{
			StepsCompleted: model.AllSteps(),
			Success:        true,
			FallbackMode:   len(degraded) > 0,
			StepsDegraded:  degraded,
		},
		Normalized:     normalized,
		Classification: cls,
		Severity:       severity,
		Legal:          legal,
		Explanation:    explanation,
		Timeline:       timeline,
		CorruptionRisk: risk,
		Metadata:       o.metadata(text, lang),
	}
}

// fallbackAll rebuilds the whole envelope from local engines only. Stage
// inputs mirror the degraded remote path except that classification and
// severity read the raw text, since normalization itself is suspect here.
func (o *Orchestrator) fallbackAll(text string, lang model.LanguageCode) *model.Envelope {
	normalized := fallback.Normalize(text, lang)
	cls := fallback.Classify(text)
	severity := fallback.Severity(text, cls.Category)
	timeline := fallback.Timeline(cls.Category, severity.Score)
	risk := fallback.CorruptionRisk(cls.Category, severity.Score)

	return &model.Envelope{
		Pipeline: model.PipelineStatus{
			StepsCompleted: []string{model.StepFallbackProcessing},
			Success:        true,
			FallbackMode:   true,
		},
		Normalized:     normalized,
		Classification: cls,
		Severity:       severity,
		Legal:          fallback.LegalMap(cls.Category),
		Explanation:    fallback.Explain(text, cls),
		Timeline:       timeline,
		CorruptionRisk: risk,
		Metadata:       o.metadata(text, lang),
	}
}

func (o *Orchestrator) metadata(text string, lang model.LanguageCode) model.Metadata {
	return model.Metadata{
		OriginalLanguage: lang,
		ProcessedAt:      o.now().UTC(),
		TextLength:       utf8.RuneCountInString(text),
	}
}

func (o *Orchestrator) degrade(step string, err error, degraded *[]string) {
	*degraded = append(*degraded, step)
	zap.L().Warn("remote stage unavailable, using fallback",
		zap.String("step", step),
		zap.Error(err))
}

func (o *Orchestrator) normalize(ctx context.Context, text string, lang model.LanguageCode, degraded *[]string) model.NormalizationResult {
	res, err := o.ml.Normalize(ctx, text, lang)
	if err != nil {
		o.degrade(model.StepNormalization, err, degraded)
		return fallback.Normalize(text, lang)
	}
	return *res
}

func (o *Orchestrator) classify(ctx context.Context, text string, degraded *[]string) model.Classification {
	res, err := o.ml.Classify(ctx, text)
	if err != nil {
		o.degrade(model.StepClassification, err, degraded)
		return fallback.Classify(text)
	}
	return *res
}

func (o *Orchestrator) severity(ctx context.Context, text string, category model.Category, degraded *[]string) model.SeverityAssessment {
	res, err := o.ml.Severity(ctx, text, category)
	if err != nil {
		o.degrade(model.StepSeverity, err, degraded)
		return fallback.Severity(text, category)
	}
	return *res
}

func (o *Orchestrator) legalMapping(ctx context.Context, category model.Category, degraded *[]string) model.LegalMapping {
	res, err := o.ml.LegalMapping(ctx, category)
	if err != nil {
		o.degrade(model.StepLegalMapping, err, degraded)
		return fallback.LegalMap(category)
	}
	return *res
}

func (o *Orchestrator) explain(ctx context.Context, originalText, normalizedText string, cls model.Classification, degraded *[]string) model.Explanation {
	res, err := o.ml.Explain(ctx, originalText, normalizedText, cls)
	if err != nil {
		o.degrade(model.StepExplanation, err, degraded)
		return fallback.Explain(originalText, cls)
	}
	return *res
}

func (o *Orchestrator) timeline(ctx context.Context, category model.Category, severityScore int, degraded *[]string) model.TimelinePrediction {
	res, err := o.ml.PredictTimeline(ctx, category, severityScore)
	if err != nil {
		o.degrade(model.StepTimeline, err, degraded)
		return fallback.Timeline(category, severityScore)
	}
	return *res
}

func (o *Orchestrator) corruptionRisk(ctx context.Context, category model.Category, severityScore int, degraded *[]string) model.CorruptionRiskAssessment {
	res, err := o.ml.AssessCorruptionRisk(ctx, category, severityScore)
	if err != nil {
		o.degrade(model.StepCorruption, err, degraded)
		return fallback.CorruptionRisk(category, severityScore)
	}
	return *res
}
