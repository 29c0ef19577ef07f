package pipeline

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/pkg/mlservice"
)

// stubClient implements mlservice.Client with per-method hooks. Methods
// without a hook behave like an unreachable endpoint.
type stubClient struct {
	normalize  func(ctx context.Context, text string, lang model.LanguageCode) (*model.NormalizationResult, error)
	classify   func(ctx context.Context, text string) (*model.Classification, error)
	severity   func(ctx context.Context, text string, category model.Category) (*model.SeverityAssessment, error)
	legal      func(ctx context.Context, category model.Category) (*model.LegalMapping, error)
	explain    func(ctx context.Context, originalText, normalizedText string, cls model.Classification) (*model.Explanation, error)
	timeline   func(ctx context.Context, category model.Category, severityScore int) (*model.TimelinePrediction, error)
	corruption func(ctx context.Context, category model.Category, severityScore int) (*model.CorruptionRiskAssessment, error)
	acts       func(ctx context.Context) ([]model.LegalAct, error)
	ipcbns     func(ctx context.Context, ipcSection string) (*model.SectionComparison, error)
}

func unreachable(op string) error {
	return &mlservice.Error{Kind: mlservice.KindTransport, Op: op, Err: eris.New("connection refused")}
}

func (s *stubClient) Normalize(ctx context.Context, text string, lang model.LanguageCode) (*model.NormalizationResult, error) {
	if s.normalize == nil {
		return nil, unreachable("/normalize")
	}
	return s.normalize(ctx, text, lang)
}

func (s *stubClient) Classify(ctx context.Context, text string) (*model.Classification, error) {
	if s.classify == nil {
		return nil, unreachable("/classify")
	}
	return s.classify(ctx, text)
}

func (s *stubClient) Severity(ctx context.Context, text string, category model.Category) (*model.SeverityAssessment, error) {
	if s.severity == nil {
		return nil, unreachable("/severity")
	}
	return s.severity(ctx, text, category)
}

func (s *stubClient) LegalMapping(ctx context.Context, category model.Category) (*model.LegalMapping, error) {
	if s.legal == nil {
		return nil, unreachable("/legal-mapping")
	}
	return s.legal(ctx, category)
}

func (s *stubClient) Explain(ctx context.Context, originalText, normalizedText string, cls model.Classification) (*model.Explanation, error) {
	if s.explain == nil {
		return nil, unreachable("/explain")
	}
	return s.explain(ctx, originalText, normalizedText, cls)
}

func (s *stubClient) PredictTimeline(ctx context.Context, category model.Category, severityScore int) (*model.TimelinePrediction, error) {
	if s.timeline == nil {
		return nil, unreachable("/predict-timeline")
	}
	return s.timeline(ctx, category, severityScore)
}

func (s *stubClient) AssessCorruptionRisk(ctx context.Context, category model.Category, severityScore int) (*model.CorruptionRiskAssessment, error) {
	if s.corruption == nil {
		return nil, unreachable("/assess-corruption-risk")
	}
	return s.corruption(ctx, category, severityScore)
}

func (s *stubClient) LegalActs(ctx context.Context) ([]model.LegalAct, error) {
	if s.acts == nil {
		return nil, unreachable("/legal-acts")
	}
	return s.acts(ctx)
}

func (s *stubClient) IPCBNSComparison(ctx context.Context, ipcSection string) (*model.SectionComparison, error) {
	if s.ipcbns == nil {
		return nil, unreachable("/ipc-bns")
	}
	return s.ipcbns(ctx, ipcSection)
}
