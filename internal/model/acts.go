package model

// LegalAct is one entry of the legal acts catalogue shown on the Learn
// screen.
type LegalAct struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Sections    int      `json:"sections"`
	Status      string   `json:"status"`
	KeyFeatures []string `json:"key_features" yaml:"key_features"`
	Relevance   string   `json:"relevance,omitempty"`
}

// StatuteSection describes one section of a criminal statute.
type StatuteSection struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Punishment  string   `json:"punishment"`
	Description string   `json:"description,omitempty"`
	Changes     []string `json:"changes,omitempty"`
	Year        int      `json:"year,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// ComparisonNotes summarizes what changed between the IPC and BNS versions
// of a section.
type ComparisonNotes struct {
	KeyChanges []string `json:"key_changes" yaml:"key_changes"`
	Impact     string   `json:"impact"`
	Notes      string   `json:"notes"`
}

// SectionComparison pairs an IPC section with its BNS successor.
type SectionComparison struct {
	IPC        StatuteSection  `json:"ipc"`
	BNS        StatuteSection  `json:"bns"`
	Comparison ComparisonNotes `json:"comparison"`
}
