package model

// LatencyMetrics reports estimated processing latency in milliseconds.
// Per-operation figures vary with the peak-hour window.
type LatencyMetrics struct {
	ComplaintProcessing float64 `json:"complaint_processing"`
	DraftGeneration     float64 `json:"draft_generation"`
	Classification      float64 `json:"classification"`
	IPCBNSComparison    float64 `json:"ipc_bns_comparison"`
	Average             float64 `json:"average"`
}

// AccuracyMetrics reports model quality figures.
type AccuracyMetrics struct {
	Classification         float64 `json:"classification"`
	SeverityPrediction     float64 `json:"severity_prediction"`
	LegalMapping           float64 `json:"legal_mapping"`
	IPCBNSMapping          float64 `json:"ipc_bns_mapping"`
	MultilingualProcessing float64 `json:"multilingual_processing"`
}

// UsageMetrics reports request volume.
type UsageMetrics struct {
	ComplaintsProcessed int `json:"complaints_processed"`
	DraftsGenerated     int `json:"drafts_generated"`
	IPCQueries          int `json:"ipc_queries"`
	BNSQueries          int `json:"bns_queries"`
	LegalActsSearched   int `json:"legal_acts_searched"`
	ActiveUsers         int `json:"active_users"`
	PeakConcurrentUsers int `json:"peak_concurrent_users"`
}

// CoverageMetrics reports how much of the legal corpus the rule tables span.
type CoverageMetrics struct {
	IPCSectionsCovered int `json:"ipc_sections_covered"`
	BNSSectionsCovered int `json:"bns_sections_covered"`
	LegalActsAvailable int `json:"legal_acts_available"`
	LanguagesSupported int `json:"languages_supported"`
	StatesCovered      int `json:"states_covered"`
	DistrictsCovered   int `json:"districts_covered"`
}

// SystemStatus reports component health.
type SystemStatus struct {
	Backend          string  `json:"backend"`
	Database         string  `json:"database"`
	MLServices       string  `json:"ml_services"`
	UptimePercentage float64 `json:"uptime_percentage"`
	LastMaintenance  string  `json:"last_maintenance"`
	NextMaintenance  string  `json:"next_maintenance"`
}

// PerformanceMetrics is the aggregate report returned by the metrics
// endpoint and command.
type PerformanceMetrics struct {
	Latency      LatencyMetrics  `json:"latency"`
	Accuracy     AccuracyMetrics `json:"accuracy"`
	Usage        UsageMetrics    `json:"usage"`
	Coverage     CoverageMetrics `json:"coverage"`
	SystemStatus SystemStatus    `json:"system_status"`
}
