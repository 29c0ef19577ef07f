package model

// Category identifies a complaint category. Classification and legal mapping
// share this vocabulary so a classified category always resolves to a mapping.
type Category string

const (
	CategoryTheft      Category = "Theft"
	CategoryAssault    Category = "Assault"
	CategoryHarassment Category = "Harassment"
	CategoryCybercrime Category = "Cybercrime"
	CategoryFraud      Category = "Fraud"

	// CategoryGeneral is returned when no keyword matches during fallback
	// classification.
	CategoryGeneral Category = "General Complaint"

	// CategoryUnknown is the remote service's default when it cannot decide.
	CategoryUnknown Category = "Unknown"
)

// AllCategories returns the specific categories in declaration order.
// The order is load-bearing: the fallback classifier breaks score ties by
// keeping the first-declared category.
func AllCategories() []Category {
	return []Category{
		CategoryTheft,
		CategoryAssault,
		CategoryHarassment,
		CategoryCybercrime,
		CategoryFraud,
	}
}

// Known reports whether c is one of the specific categories (not General
// Complaint or Unknown).
func (c Category) Known() bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// SeverityLevel is the qualitative band derived from a severity score.
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "Critical"
	SeverityHigh     SeverityLevel = "High"
	SeverityMedium   SeverityLevel = "Medium"
	SeverityLow      SeverityLevel = "Low"
)

// SeverityLevelFor maps a score to its level using the fixed 80/60/40
// thresholds.
func SeverityLevelFor(score int) SeverityLevel {
	switch {
	case score >= 80:
		return SeverityCritical
	case score >= 60:
		return SeverityHigh
	case score >= 40:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// RiskLevel is the qualitative band for a corruption risk score.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// RiskLevelFor maps a risk score in [0,1] to its level using the fixed
// 0.5/0.3 thresholds.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= 0.5:
		return RiskHigh
	case score >= 0.3:
		return RiskMedium
	default:
		return RiskLow
	}
}

// LanguageCode is the declared source language of a complaint.
type LanguageCode string

const (
	LangEnglish LanguageCode = "en"
	LangHindi   LanguageCode = "hi"
	LangTamil   LanguageCode = "ta"
)
