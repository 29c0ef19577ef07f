package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/pkg/mlservice"
)

const theftComplaint = "Someone stole my mobile phone from the bus station yesterday around 5 PM."

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestProcessAllRemoteUnreachable(t *testing.T) {
	o := New(&stubClient{}, WithNow(fixedNow))
	env := o.Process(context.Background(), theftComplaint, model.LangEnglish)

	require.NotNil(t, env)
	assert.Equal(t, model.AllSteps(), env.Pipeline.StepsCompleted)
	assert.True(t, env.Pipeline.Success)
	assert.True(t, env.Pipeline.FallbackMode)
	assert.Equal(t, model.AllSteps(), env.Pipeline.StepsDegraded)

	assert.Equal(t, model.CategoryTheft, env.Classification.Category)
	assert.InDelta(t, 0.5, env.Classification.Confidence, 1e-9)
	assert.Equal(t, "fallback-keyword-v1", env.Classification.ModelVersion)

	assert.Equal(t, 64, env.Severity.Score)
	assert.Equal(t, model.SeverityHigh, env.Severity.Level)

	require.Len(t, env.Legal.IPCSections, 2)
	assert.Equal(t, "378", env.Legal.IPCSections[0].Code)

	assert.NotEmpty(t, env.Timeline.Stages)
	assert.NotEmpty(t, env.CorruptionRisk.Recommendations)

	assert.Equal(t, model.LangEnglish, env.Metadata.OriginalLanguage)
	assert.Equal(t, fixedNow(), env.Metadata.ProcessedAt)
	assert.Equal(t, len(theftComplaint), env.Metadata.TextLength)
}

func TestProcessAllRemote(t *testing.T) {
	ml := &stubClient{
		normalize: func(_ context.Context, text string, _ model.LanguageCode) (*model.NormalizationResult, error) {
			return &model.NormalizationResult{
				OriginalText:    text,
				NormalizedText:  "normalized " + text,
				DialectDetected: "standard",
				Changes:         []model.Substitution{},
				Confidence:      0.95,
			}, nil
		},
		classify: func(_ context.Context, text string) (*model.Classification, error) {
			assert.Contains(t, text, "normalized ")
			return &model.Classification{
				Category:     model.CategoryAssault,
				Confidence:   0.9,
				Alternatives: []model.Category{},
				ModelVersion: mlservice.RemoteModelVersion,
			}, nil
		},
		severity: func(_ context.Context, _ string, category model.Category) (*model.SeverityAssessment, error) {
			assert.Equal(t, model.CategoryAssault, category)
			return &model.SeverityAssessment{Score: 85, Level: model.SeverityCritical, RiskAssessment: "High"}, nil
		},
		legal: func(_ context.Context, category model.Category) (*model.LegalMapping, error) {
			assert.Equal(t, model.CategoryAssault, category)
			return &model.LegalMapping{IPCSections: []model.SectionRef{{Code: "323"}}}, nil
		},
		explain: func(_ context.Context, originalText, _ string, _ model.Classification) (*model.Explanation, error) {
			assert.Equal(t, theftComplaint, originalText)
			return &model.Explanation{Highlights: []model.Highlight{}}, nil
		},
		timeline: func(_ context.Context, _ model.Category, severityScore int) (*model.TimelinePrediction, error) {
			assert.Equal(t, 85, severityScore)
			return &model.TimelinePrediction{EstimatedDays: 200, Confidence: 0.9}, nil
		},
		corruption: func(_ context.Context, _ model.Category, severityScore int) (*model.CorruptionRiskAssessment, error) {
			assert.Equal(t, 85, severityScore)
			return &model.CorruptionRiskAssessment{RiskScore: 0.5, RiskLevel: model.RiskHigh}, nil
		},
	}

	o := New(ml, WithNow(fixedNow))
	env := o.Process(context.Background(), theftComplaint, model.LangEnglish)

	assert.False(t, env.Pipeline.FallbackMode)
	assert.Empty(t, env.Pipeline.StepsDegraded)
	assert.Equal(t, model.AllSteps(), env.Pipeline.StepsCompleted)
	assert.Equal(t, model.CategoryAssault, env.Classification.Category)
	assert.Equal(t, mlservice.RemoteModelVersion, env.Classification.ModelVersion)
	assert.Equal(t, 85, env.Severity.Score)
	assert.Equal(t, 200, env.Timeline.EstimatedDays)
}

func TestProcessClassifyDegradedOnly(t *testing.T) {
	var severityCategory model.Category
	ml := &stubClient{
		normalize: func(_ context.Context, text string, _ model.LanguageCode) (*model.NormalizationResult, error) {
			return &model.NormalizationResult{OriginalText: text, NormalizedText: text, DialectDetected: "standard", Confidence: 0.95}, nil
		},
		classify: func(context.Context, string) (*model.Classification, error) {
			return nil, &mlservice.Error{Kind: mlservice.KindResponse, Op: "/classify", Err: assert.AnError}
		},
		severity: func(_ context.Context, _ string, category model.Category) (*model.SeverityAssessment, error) {
			severityCategory = category
			return &model.SeverityAssessment{Score: 70, Level: model.SeverityHigh}, nil
		},
		legal: func(_ context.Context, category model.Category) (*model.LegalMapping, error) {
			return &model.LegalMapping{IPCSections: []model.SectionRef{{Code: "378"}}}, nil
		},
		explain: func(context.Context, string, string, model.Classification) (*model.Explanation, error) {
			return &model.Explanation{}, nil
		},
		timeline: func(context.Context, model.Category, int) (*model.TimelinePrediction, error) {
			return &model.TimelinePrediction{EstimatedDays: 100}, nil
		},
		corruption: func(context.Context, model.Category, int) (*model.CorruptionRiskAssessment, error) {
			return &model.CorruptionRiskAssessment{RiskScore: 0.2, RiskLevel: model.RiskLow}, nil
		},
	}

	o := New(ml, WithNow(fixedNow))
	env := o.Process(context.Background(), theftComplaint, model.LangEnglish)

	assert.True(t, env.Pipeline.FallbackMode)
	assert.Equal(t, []string{model.StepClassification}, env.Pipeline.StepsDegraded)
	assert.Equal(t, model.AllSteps(), env.Pipeline.StepsCompleted)

	// The fallback classification feeds every later stage.
	assert.Equal(t, model.CategoryTheft, env.Classification.Category)
	assert.Equal(t, "fallback-keyword-v1", env.Classification.ModelVersion)
	assert.Equal(t, model.CategoryTheft, severityCategory)
	assert.Equal(t, 70, env.Severity.Score)
}

func TestProcessRecoversFromStageDefect(t *testing.T) {
	ml := &stubClient{
		classify: func(context.Context, string) (*model.Classification, error) {
			panic("stage defect")
		},
	}

	o := New(ml, WithNow(fixedNow))
	env := o.Process(context.Background(), theftComplaint, model.LangEnglish)

	require.NotNil(t, env)
	assert.Equal(t, []string{model.StepFallbackProcessing}, env.Pipeline.StepsCompleted)
	assert.True(t, env.Pipeline.Success)
	assert.True(t, env.Pipeline.FallbackMode)
	assert.Equal(t, model.CategoryTheft, env.Classification.Category)
	assert.Equal(t, 64, env.Severity.Score)
	assert.NotEmpty(t, env.Legal.IPCSections)
}

func TestProcessDeterministicInFallback(t *testing.T) {
	o := New(&stubClient{}, WithNow(fixedNow))

	first := o.Process(context.Background(), theftComplaint, model.LangEnglish)
	second := o.Process(context.Background(), theftComplaint, model.LangEnglish)
	assert.Equal(t, first, second)
}

func TestProcessEmptyText(t *testing.T) {
	o := New(&stubClient{}, WithNow(fixedNow))
	env := o.Process(context.Background(), "", model.LangEnglish)

	assert.Equal(t, model.CategoryGeneral, env.Classification.Category)
	assert.InDelta(t, 0.3, env.Classification.Confidence, 1e-9)
	assert.Equal(t, 50, env.Severity.Score)
	assert.Empty(t, env.Explanation.Highlights)
	assert.Equal(t, 0, env.Metadata.TextLength)
}
