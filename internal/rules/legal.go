package rules

import "github.com/equicourt/complaint-cli/internal/model"

type legalTable struct {
	categories map[model.Category]model.LegalMapping
	fallback   model.LegalMapping
}

var legal = func() legalTable {
	var raw struct {
		Categories map[model.Category]model.LegalMapping `yaml:"categories"`
		Default    model.LegalMapping                    `yaml:"default"`
	}
	mustLoad("legal.yaml", &raw)
	return legalTable{categories: raw.Categories, fallback: raw.Default}
}()

// Mapping returns the statutory mapping for a category. Categories without
// a dedicated mapping get the general one.
func Mapping(c model.Category) model.LegalMapping {
	if m, ok := legal.categories[c]; ok {
		return m
	}
	return legal.fallback
}
