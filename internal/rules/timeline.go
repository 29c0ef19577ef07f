package rules

import "github.com/equicourt/complaint-cli/internal/model"

// TimelineBand is the historical duration band for a category, in days.
type TimelineBand struct {
	MinDays     int `yaml:"min_days"`
	MaxDays     int `yaml:"max_days"`
	TypicalDays int `yaml:"typical_days"`
}

type timelineTable struct {
	categories map[model.Category]TimelineBand
	fallback   TimelineBand
}

var timeline = func() timelineTable {
	var raw struct {
		Categories map[model.Category]TimelineBand `yaml:"categories"`
		Default    TimelineBand                    `yaml:"default"`
	}
	mustLoad("timeline.yaml", &raw)
	return timelineTable{categories: raw.Categories, fallback: raw.Default}
}()

// Timeline returns the duration band for a category.
func Timeline(c model.Category) TimelineBand {
	if b, ok := timeline.categories[c]; ok {
		return b
	}
	return timeline.fallback
}
