package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicourt/complaint-cli/internal/model"
)

func TestSubstitutionsOrdered(t *testing.T) {
	hi := Substitutions(model.LangHindi)
	require.Len(t, hi, 5)
	assert.Equal(t, "mobile", hi[0].Term)
	assert.Equal(t, "mobile phone", hi[0].Replacement)
	assert.Equal(t, "chor", hi[1].Term)
	assert.Equal(t, "chori", hi[2].Term)

	ta := Substitutions(model.LangTamil)
	require.Len(t, ta, 4)
	assert.Equal(t, "phone", ta[0].Term)
}

func TestSubstitutionsUnknownLanguage(t *testing.T) {
	assert.Nil(t, Substitutions(model.LangEnglish))
	assert.Nil(t, Substitutions("fr"))
}

func TestClassificationKeywordOrder(t *testing.T) {
	table := ClassificationKeywords()
	require.Len(t, table, 5)
	assert.Equal(t, model.CategoryTheft, table[0].Category)
	assert.Equal(t, model.CategoryAssault, table[1].Category)
	assert.Equal(t, model.CategoryHarassment, table[2].Category)
	assert.Equal(t, model.CategoryCybercrime, table[3].Category)
	assert.Equal(t, model.CategoryFraud, table[4].Category)
	assert.Contains(t, table[0].Keywords, "chori")
	assert.Contains(t, table[3].Keywords, "social media")
}

func TestExplanationKeywords(t *testing.T) {
	assert.Contains(t, ExplanationKeywords(model.CategoryTheft), "stole")
	assert.Contains(t, ExplanationKeywords(model.CategoryAssault), "mar")
	assert.Nil(t, ExplanationKeywords(model.CategoryFraud))
	assert.Nil(t, ExplanationKeywords(model.CategoryGeneral))
}

func TestSeverityFactors(t *testing.T) {
	factors := SeverityFactors()
	require.Len(t, factors, 5)
	assert.Equal(t, "Violence mentioned", factors[0].Name)
	assert.True(t, factors[0].Pattern.MatchString("He HIT me"))
	assert.Equal(t, "Weapon mentioned", factors[1].Name)
	assert.InDelta(t, 0.4, factors[1].Weight, 1e-9)
	assert.True(t, factors[2].Pattern.MatchString("near the bus stand"))
}

func TestBaseScores(t *testing.T) {
	assert.Equal(t, 60, BaseScore(model.CategoryTheft))
	assert.Equal(t, 80, BaseScore(model.CategoryAssault))
	assert.Equal(t, 45, BaseScore(model.CategoryFraud))
	assert.Equal(t, 50, BaseScore(model.CategoryGeneral))
	assert.Equal(t, 50, BaseScore(model.CategoryUnknown))
}

func TestMapping(t *testing.T) {
	theft := Mapping(model.CategoryTheft)
	require.Len(t, theft.IPCSections, 2)
	assert.Equal(t, "378", theft.IPCSections[0].Code)
	assert.Equal(t, "305", theft.BNSSections[1].Code)
	assert.Contains(t, theft.EvidenceChecklist, "CCTV footage if available")

	general := Mapping(model.CategoryHarassment)
	require.Len(t, general.IPCSections, 1)
	assert.Equal(t, "General", general.IPCSections[0].Code)
	assert.Equal(t, []string{"ID Proof", "Complaint Letter"}, general.RequiredDocuments)
}

func TestTimeline(t *testing.T) {
	assert.Equal(t, TimelineBand{MinDays: 30, MaxDays: 180, TypicalDays: 90}, Timeline(model.CategoryTheft))
	assert.Equal(t, TimelineBand{MinDays: 120, MaxDays: 540, TypicalDays: 300}, Timeline(model.CategoryCybercrime))
	assert.Equal(t, TimelineBand{MinDays: 60, MaxDays: 365, TypicalDays: 180}, Timeline(model.CategoryFraud))
}

func TestCategoryRiskWeight(t *testing.T) {
	assert.InDelta(t, 0.3, CategoryRiskWeight(model.CategoryFraud), 1e-9)
	assert.InDelta(t, 0.3, CategoryRiskWeight(model.CategoryCybercrime), 1e-9)
	assert.InDelta(t, 0.2, CategoryRiskWeight(model.CategoryAssault), 1e-9)
	assert.Zero(t, CategoryRiskWeight(model.CategoryTheft))
}

func TestRiskRecommendations(t *testing.T) {
	assert.Len(t, RiskRecommendations(model.RiskHigh), 4)
	assert.Len(t, RiskRecommendations(model.RiskMedium), 4)
	assert.Len(t, RiskRecommendations(model.RiskLow), 3)
	assert.Equal(t, []string{"case_category", "severity", "common_risk_patterns"}, CorruptionFactors())
}

func TestActsCatalogue(t *testing.T) {
	all := Acts()
	require.Len(t, all, 22)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "Indian Penal Code (IPC)", all[0].Name)
	assert.Equal(t, 2023, all[1].Year)
	assert.Len(t, all[1].KeyFeatures, 3)
}

func TestComparison(t *testing.T) {
	c, ok := Comparison("302")
	require.True(t, ok)
	assert.Equal(t, "Murder", c.IPC.Title)
	assert.Equal(t, "103", c.BNS.Code)
	assert.NotEmpty(t, c.Comparison.KeyChanges)

	_, ok = Comparison("999")
	assert.False(t, ok)

	assert.Equal(t, 17, ComparisonCount())
}

func TestEvidenceChecklist(t *testing.T) {
	assert.Len(t, EvidenceChecklist(model.CategoryTheft), 5)
	assert.Contains(t, EvidenceChecklist(model.CategoryAssault), "Clothing evidence")
	assert.Equal(t, 4, len(EvidenceChecklist(model.CategoryGeneral)))
}

func TestRecommendedActions(t *testing.T) {
	assert.Len(t, RecommendedActions(model.SeverityHigh), 5)
	assert.Len(t, RecommendedActions(model.SeverityLow), 5)
	assert.Equal(t, []string{"Consult local authorities for guidance"}, RecommendedActions(model.SeverityCritical))
}
