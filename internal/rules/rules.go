// Package rules holds the immutable rule tables behind the local fallback
// engines: substitution lists, keyword tables, severity factors, statutory
// mappings and the legal reference catalogue. Tables are embedded YAML
// decoded once at startup; a table that fails to decode is a packaging
// defect and panics.
package rules

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

func mustLoad(name string, v any) {
	raw, err := tablesFS.ReadFile("tables/" + name)
	if err != nil {
		panic(fmt.Sprintf("rules: read table %s: %v", name, err))
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		panic(fmt.Sprintf("rules: decode table %s: %v", name, err))
	}
}
