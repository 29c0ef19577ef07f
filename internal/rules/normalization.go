package rules

import "github.com/equicourt/complaint-cli/internal/model"

// TermSubstitution is one colloquial-term rewrite rule.
type TermSubstitution struct {
	Term        string `yaml:"term"`
	Replacement string `yaml:"replacement"`
}

var substitutions = func() map[model.LanguageCode][]TermSubstitution {
	var t map[model.LanguageCode][]TermSubstitution
	mustLoad("normalization.yaml", &t)
	return t
}()

// Substitutions returns the substitution rules for a language in application
// order, or nil when the language has no table.
func Substitutions(lang model.LanguageCode) []TermSubstitution {
	return substitutions[lang]
}
