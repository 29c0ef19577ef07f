package rules

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/equicourt/complaint-cli/internal/model"
)

// CategoryKeywords pairs a category with the keywords that vote for it.
type CategoryKeywords struct {
	Category model.Category
	Keywords []string
}

// Table keys are lowercase; display categories are their title-cased form.
var classifyTable = func() []CategoryKeywords {
	var raw struct {
		Categories []struct {
			Name     string   `yaml:"name"`
			Keywords []string `yaml:"keywords"`
		} `yaml:"categories"`
	}
	mustLoad("classification.yaml", &raw)

	title := cases.Title(language.English)
	out := make([]CategoryKeywords, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		out = append(out, CategoryKeywords{
			Category: model.Category(title.String(c.Name)),
			Keywords: c.Keywords,
		})
	}
	return out
}()

// ClassificationKeywords returns the keyword table in tie-break order: the
// first entry wins when match counts are equal.
func ClassificationKeywords() []CategoryKeywords {
	return classifyTable
}

var explainTable = func() map[model.Category][]string {
	var t map[model.Category][]string
	mustLoad("explanation.yaml", &t)
	return t
}()

// ExplanationKeywords returns the keywords highlighted for a category, or
// nil when the category has none.
func ExplanationKeywords(c model.Category) []string {
	return explainTable[c]
}
