package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sev(v float64) *float64 { return &v }

func TestCalculateRiskScore_Empty(t *testing.T) {
	assert.Equal(t, 0, CalculateRiskScore(nil))
	assert.Equal(t, 0, CalculateRiskScore([]Finding{}))
}

func TestCalculateRiskScore_SingleCategory(t *testing.T) {
	// arbitration weight 25, severity 10 -> (10/10)*25 = 25
	findings := []Finding{{Category: "arbitration", Severity: sev(10)}}
	assert.Equal(t, 25, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_MultipleCategories(t *testing.T) {
	// data_sharing weight 20 at severity 10 -> 20; tracking weight 10 at 5 -> 5
	findings := []Finding{
		{Category: "data_sharing", Severity: sev(10)},
		{Category: "tracking", Severity: sev(5)},
	}
	assert.Equal(t, 25, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_UnknownCategoryContributesZero(t *testing.T) {
	findings := []Finding{{Category: "unknown_thing", Severity: sev(10)}}
	assert.Equal(t, 0, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_MissingSeverityDefaultsToFive(t *testing.T) {
	// no_liability weight 15 -> (5/10)*15 = 7.5, truncated to 7
	findings := []Finding{{Category: "no_liability"}}
	assert.Equal(t, 7, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_NormalizesCategoryLabels(t *testing.T) {
	findings := []Finding{{Category: "Data Sharing", Severity: sev(10)}}
	assert.Equal(t, 20, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_SameCategoryAccumulates(t *testing.T) {
	findings := []Finding{
		{Category: "arbitration", Severity: sev(10)},
		{Category: "arbitration", Severity: sev(10)},
	}
	assert.Equal(t, 50, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_CappedAt100(t *testing.T) {
	var findings []Finding
	for _, c := range Categories() {
		findings = append(findings, Finding{Category: c.ID, Severity: sev(10)})
		findings = append(findings, Finding{Category: c.ID, Severity: sev(10)})
	}
	assert.Equal(t, 100, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_SeverityNotClamped(t *testing.T) {
	// severity 20 on tracking (weight 10) contributes 20, above the weight
	findings := []Finding{{Category: "tracking", Severity: sev(20)}}
	assert.Equal(t, 20, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_Idempotent(t *testing.T) {
	findings := []Finding{
		{Category: "arbitration", Severity: sev(7)},
		{Category: "tracking"},
		{Category: "nonsense", Severity: sev(9)},
	}
	first := CalculateRiskScore(findings)
	assert.Equal(t, first, CalculateRiskScore(findings))
}

func TestCalculateRiskScore_ValidInputStaysInRange(t *testing.T) {
	for _, c := range Categories() {
		for s := 0; s <= 10; s++ {
			got := CalculateRiskScore([]Finding{{Category: c.ID, Severity: sev(float64(s))}})
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
