// Package mlservice is the HTTP client for the remote complaint-analysis
// model services. Every call carries a per-call timeout; failures come back
// as a classified *Error so the caller can log why it degraded to the local
// fallback.
package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/equicourt/complaint-cli/internal/model"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 10 * time.Second

	// RemoteModelVersion is the classification tag the remote service
	// reports when it omits one.
	RemoteModelVersion = "eccm-v1.0"
)

// Client calls the remote model services backing the pipeline stages and
// the legal reference lookups.
type Client interface {
	Normalize(ctx context.Context, text string, lang model.LanguageCode) (*model.NormalizationResult, error)
	Classify(ctx context.Context, text string) (*model.Classification, error)
	Severity(ctx context.Context, text string, category model.Category) (*model.SeverityAssessment, error)
	LegalMapping(ctx context.Context, category model.Category) (*model.LegalMapping, error)
	Explain(ctx context.Context, originalText, normalizedText string, cls model.Classification) (*model.Explanation, error)
	PredictTimeline(ctx context.Context, category model.Category, severityScore int) (*model.TimelinePrediction, error)
	AssessCorruptionRisk(ctx context.Context, category model.Category, severityScore int) (*model.CorruptionRiskAssessment, error)
	LegalActs(ctx context.Context) ([]model.LegalAct, error)
	IPCBNSComparison(ctx context.Context, ipcSection string) (*model.SectionComparison, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default service base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.timeout = d
	}
}

// WithRateLimit caps outgoing calls at rps requests per second with the
// given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type httpClient struct {
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	http    *http.Client
}

// NewClient creates a model service client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) call(ctx context.Context, method, path string, payload, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindTransport, Op: path, Err: eris.Wrap(err, "rate limit wait")}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return &Error{Kind: KindParse, Op: path, Err: eris.Wrap(err, "marshal request")}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: path, Err: eris.Wrap(err, "create request")}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: path, Err: eris.Wrap(err, "send request")}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: path, Err: eris.Wrap(err, "read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindResponse, Op: path, Err: eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Kind: KindParse, Op: path, Err: eris.Wrap(err, "unmarshal response")}
	}
	return nil
}

func (c *httpClient) Normalize(ctx context.Context, text string, lang model.LanguageCode) (*model.NormalizationResult, error) {
	payload := map[string]any{
		"text":            text,
		"source_language": lang,
		"target_format":   "legal_english",
	}
	var wire struct {
		NormalizedText  string               `json:"normalized_text"`
		DialectDetected string               `json:"dialect_detected"`
		ChangesApplied  []model.Substitution `json:"changes_applied"`
		Confidence      float64              `json:"confidence"`
	}
	if err := c.call(ctx, http.MethodPost, "/normalize", payload, &wire); err != nil {
		return nil, err
	}

	out := model.NormalizationResult{
		OriginalText:    text,
		NormalizedText:  wire.NormalizedText,
		DialectDetected: wire.DialectDetected,
		Changes:         wire.ChangesApplied,
		Confidence:      wire.Confidence,
	}
	if out.NormalizedText == "" {
		out.NormalizedText = text
	}
	if out.DialectDetected == "" {
		out.DialectDetected = "standard"
	}
	if out.Changes == nil {
		out.Changes = []model.Substitution{}
	}
	if out.Confidence == 0 {
		out.Confidence = 0.95
	}
	return &out, nil
}

func (c *httpClient) Classify(ctx context.Context, text string) (*model.Classification, error) {
	var wire struct {
		Category     string           `json:"category"`
		Confidence   float64          `json:"confidence"`
		Subcategory  string           `json:"subcategory"`
		Alternatives []model.Category `json:"alternatives"`
		ModelVersion string           `json:"model_version"`
	}
	if err := c.call(ctx, http.MethodPost, "/classify", map[string]any{"text": text}, &wire); err != nil {
		return nil, err
	}

	out := model.Classification{
		Category:     model.Category(wire.Category),
		Confidence:   wire.Confidence,
		Subcategory:  wire.Subcategory,
		Alternatives: wire.Alternatives,
		ModelVersion: wire.ModelVersion,
	}
	if out.Category == "" {
		out.Category = model.CategoryUnknown
	}
	if out.Confidence == 0 {
		out.Confidence = 0.75
	}
	if out.Alternatives == nil {
		out.Alternatives = []model.Category{}
	}
	if out.ModelVersion == "" {
		out.ModelVersion = RemoteModelVersion
	}
	return &out, nil
}

func (c *httpClient) Severity(ctx context.Context, text string, category model.Category) (*model.SeverityAssessment, error) {
	payload := map[string]any{"text": text, "category": category}
	var wire struct {
		Score          int                    `json:"score"`
		Factors        []model.SeverityFactor `json:"factors"`
		SuggestedIPC   []string               `json:"suggested_ipc"`
		RiskAssessment string                 `json:"risk_assessment"`
	}
	if err := c.call(ctx, http.MethodPost, "/severity", payload, &wire); err != nil {
		return nil, err
	}

	score := wire.Score
	if score == 0 {
		score = 50
	}
	out := model.SeverityAssessment{
		Score:          score,
		Level:          model.SeverityLevelFor(score),
		Factors:        wire.Factors,
		SuggestedIPC:   wire.SuggestedIPC,
		RiskAssessment: wire.RiskAssessment,
	}
	if out.Factors == nil {
		out.Factors = []model.SeverityFactor{}
	}
	if out.SuggestedIPC == nil {
		out.SuggestedIPC = []string{}
	}
	if out.RiskAssessment == "" {
		out.RiskAssessment = "Medium"
	}
	return &out, nil
}

func (c *httpClient) LegalMapping(ctx context.Context, category model.Category) (*model.LegalMapping, error) {
	var out model.LegalMapping
	if err := c.call(ctx, http.MethodPost, "/legal-mapping", map[string]any{"category": category}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) Explain(ctx context.Context, originalText, normalizedText string, cls model.Classification) (*model.Explanation, error) {
	payload := map[string]any{
		"original_text":   originalText,
		"normalized_text": normalizedText,
		"classification":  cls,
	}
	var out model.Explanation
	if err := c.call(ctx, http.MethodPost, "/explain", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) PredictTimeline(ctx context.Context, category model.Category, severityScore int) (*model.TimelinePrediction, error) {
	payload := map[string]any{"category": category, "severity_score": severityScore}
	var out model.TimelinePrediction
	if err := c.call(ctx, http.MethodPost, "/predict-timeline", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) AssessCorruptionRisk(ctx context.Context, category model.Category, severityScore int) (*model.CorruptionRiskAssessment, error) {
	payload := map[string]any{"category": category, "severity_score": severityScore}
	var out model.CorruptionRiskAssessment
	if err := c.call(ctx, http.MethodPost, "/assess-corruption-risk", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) LegalActs(ctx context.Context) ([]model.LegalAct, error) {
	var out []model.LegalAct
	if err := c.call(ctx, http.MethodGet, "/legal-acts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) IPCBNSComparison(ctx context.Context, ipcSection string) (*model.SectionComparison, error) {
	var out model.SectionComparison
	if err := c.call(ctx, http.MethodPost, "/ipc-bns", map[string]any{"ipc_section": ipcSection}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
