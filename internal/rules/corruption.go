package rules

import "github.com/equicourt/complaint-cli/internal/model"

type corruptionTable struct {
	categoryWeights   map[model.Category]float64
	recommendations   map[model.RiskLevel][]string
	factorsConsidered []string
}

var corruption = func() corruptionTable {
	var raw struct {
		CategoryWeights   map[model.Category]float64   `yaml:"category_weights"`
		Recommendations   map[model.RiskLevel][]string `yaml:"recommendations"`
		FactorsConsidered []string                     `yaml:"factors_considered"`
	}
	mustLoad("corruption.yaml", &raw)
	return corruptionTable{
		categoryWeights:   raw.CategoryWeights,
		recommendations:   raw.Recommendations,
		factorsConsidered: raw.FactorsConsidered,
	}
}()

// CategoryRiskWeight returns the corruption risk contribution of a category,
// zero for categories with no elevated risk pattern.
func CategoryRiskWeight(c model.Category) float64 {
	return corruption.categoryWeights[c]
}

// RiskRecommendations returns the recommended actions for a risk level.
func RiskRecommendations(l model.RiskLevel) []string {
	return corruption.recommendations[l]
}

// CorruptionFactors returns the factor names every assessment considers.
func CorruptionFactors() []string {
	return corruption.factorsConsidered
}
