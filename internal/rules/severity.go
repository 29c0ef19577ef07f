package rules

import (
	"regexp"

	"github.com/equicourt/complaint-cli/internal/model"
)

// SeverityFactorRule is a weighted signal matched against complaint text.
type SeverityFactorRule struct {
	Name    string
	Weight  float64
	Pattern *regexp.Regexp
}

type severityTable struct {
	baseScores  map[model.Category]int
	defaultBase int
	factors     []SeverityFactorRule
}

var severity = func() severityTable {
	var raw struct {
		BaseScores  map[model.Category]int `yaml:"base_scores"`
		DefaultBase int                    `yaml:"default_base"`
		Factors     []struct {
			Name    string  `yaml:"name"`
			Weight  float64 `yaml:"weight"`
			Pattern string  `yaml:"pattern"`
		} `yaml:"factors"`
	}
	mustLoad("severity.yaml", &raw)

	t := severityTable{baseScores: raw.BaseScores, defaultBase: raw.DefaultBase}
	for _, f := range raw.Factors {
		t.factors = append(t.factors, SeverityFactorRule{
			Name:    f.Name,
			Weight:  f.Weight,
			Pattern: regexp.MustCompile("(?i)" + f.Pattern),
		})
	}
	return t
}()

// SeverityFactors returns the factor rules in declaration order.
func SeverityFactors() []SeverityFactorRule {
	return severity.factors
}

// BaseScore returns the severity base score for a category.
func BaseScore(c model.Category) int {
	if s, ok := severity.baseScores[c]; ok {
		return s
	}
	return severity.defaultBase
}
