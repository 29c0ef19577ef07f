// Package fallback implements the deterministic local engines that stand in
// for the remote model services. Every function is pure: same input, same
// output, no error path.
package fallback

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/rules"
)

// ModelVersion tags classifications produced by the keyword engine.
const ModelVersion = "fallback-keyword-v1"

// Normalize rewrites colloquial terms to their canonical legal form. A term
// fires when it appears as a case-insensitive substring of the input; the
// replacement then applies to every occurrence. Languages without a
// substitution table return the text unchanged.
func Normalize(text string, lang model.LanguageCode) model.NormalizationResult {
	normalized := text
	lower := strings.ToLower(text)
	changes := []model.Substitution{}

	for _, sub := range rules.Substitutions(lang) {
		if !strings.Contains(lower, sub.Term) {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(sub.Term))
		normalized = re.ReplaceAllString(normalized, sub.Replacement)
		changes = append(changes, model.Substitution{Original: sub.Term, Normalized: sub.Replacement})
	}

	return model.NormalizationResult{
		OriginalText:    text,
		NormalizedText:  normalized,
		DialectDetected: string(lang),
		Changes:         changes,
		Confidence:      0.85,
	}
}

// Classify scores each category by counting its keywords present in the
// text. The strictly highest count wins; ties keep the category declared
// first in the keyword table. Zero matches classify as General Complaint.
func Classify(text string) model.Classification {
	lower := strings.ToLower(text)

	best := model.CategoryGeneral
	bestScore := 0
	for _, ck := range rules.ClassificationKeywords() {
		score := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = ck.Category
		}
	}

	return model.Classification{
		Category:     best,
		Confidence:   math.Min(0.3+0.2*float64(bestScore), 0.95),
		Alternatives: []model.Category{},
		ModelVersion: ModelVersion,
	}
}

// Severity scores a complaint from the category base plus 20 points per
// unit weight of each factor present, capped at 95.
func Severity(text string, category model.Category) model.SeverityAssessment {
	var present []model.SeverityFactor
	additional := 0.0
	for _, f := range rules.SeverityFactors() {
		if !f.Pattern.MatchString(text) {
			continue
		}
		present = append(present, model.SeverityFactor{Name: f.Name, Weight: f.Weight, Present: true})
		additional += f.Weight * 20
	}

	total := math.Min(float64(rules.BaseScore(category))+additional, 95)
	score := int(math.Round(total))

	risk := "Medium"
	if total >= 70 {
		risk = "High"
	}

	return model.SeverityAssessment{
		Score:          score,
		Level:          model.SeverityLevelFor(score),
		Factors:        present,
		SuggestedIPC:   []string{"General"},
		RiskAssessment: risk,
	}
}

// LegalMap resolves the statutory sections and filing requirements for a
// category.
func LegalMap(category model.Category) model.LegalMapping {
	return rules.Mapping(category)
}

// Explain highlights every case-insensitive occurrence of the classified
// category's keywords in the original text. Matching runs on the original
// text directly, not a lowered copy: Unicode case mapping can change byte
// length, so offsets into a lowered string would not be valid offsets into
// the original.
func Explain(originalText string, cls model.Classification) model.Explanation {
	highlights := []model.Highlight{}

	for _, kw := range rules.ExplanationKeywords(cls.Category) {
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(kw))
		for _, span := range re.FindAllStringIndex(originalText, -1) {
			highlights = append(highlights, model.Highlight{
				Start:   span[0],
				End:     span[1],
				Keyword: kw,
				Weight:  0.8,
				Reason:  fmt.Sprintf("Key term for %s classification", cls.Category),
			})
		}
	}

	return model.Explanation{
		Highlights: highlights,
		ConfidenceFactors: []string{
			fmt.Sprintf("Keyword matches: %d", len(highlights)),
			fmt.Sprintf("Classification confidence: %.1f%%", cls.Confidence*100),
		},
		NormalizationChanges: []model.Substitution{},
	}
}

// Timeline estimates case duration by scaling the category's typical band
// with the severity score.
func Timeline(category model.Category, severityScore int) model.TimelinePrediction {
	band := rules.Timeline(category)
	adjusted := int(math.Round(float64(band.TypicalDays) * (0.5 + float64(severityScore)/100)))

	return model.TimelinePrediction{
		EstimatedDays: adjusted,
		Confidence:    0.7,
		Factors: []string{
			fmt.Sprintf("Case category: %s", category),
			fmt.Sprintf("Severity score: %d", severityScore),
			"Court workload (estimated)",
		},
		Stages: []model.TimelineStage{
			{Stage: "FIR Registration", Days: "1-7 days"},
			{Stage: "Investigation", Days: fmt.Sprintf("30-%d days", int(math.Round(float64(adjusted)*0.6)))},
			{Stage: "Chargesheet Filing", Days: "7-30 days"},
			{Stage: "Trial", Days: fmt.Sprintf("60-%d days", int(math.Round(float64(adjusted)*0.3)))},
		},
	}
}

// CorruptionRisk scores the risk of procedural interference from the
// category weight plus a severity bonus, rounded to two decimals.
func CorruptionRisk(category model.Category, severityScore int) model.CorruptionRiskAssessment {
	risk := rules.CategoryRiskWeight(category)
	if severityScore > 80 {
		risk += 0.3
	} else if severityScore > 50 {
		risk += 0.2
	}
	risk = math.Round(risk*100) / 100

	level := model.RiskLevelFor(risk)
	return model.CorruptionRiskAssessment{
		RiskScore:         risk,
		RiskLevel:         level,
		Recommendations:   rules.RiskRecommendations(level),
		FactorsConsidered: rules.CorruptionFactors(),
	}
}
