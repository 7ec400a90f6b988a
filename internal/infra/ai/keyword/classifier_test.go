package keyword

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, text string) ([]string, []string) {
	t.Helper()
	report, err := New().Classify(context.Background(), text, "Some Terms")
	require.NoError(t, err)

	var cats []string
	for _, f := range report.Findings {
		cats = append(cats, f.Category)
	}
	return cats, report.Summary
}

func TestClassify_DetectsCheckedCategories(t *testing.T) {
	text := "We SHARE data with partners. Disputes go to binding ARBITRATION. " +
		"Plans auto-renew monthly. We are not liable for damages. " +
		"We use cookies and analytics."

	cats, summary := classify(t, text)
	assert.Equal(t, []string{"data_sharing", "arbitration", "auto_renewal", "no_liability", "tracking"}, cats)
	assert.Len(t, summary, 4)
}

func TestClassify_AtMostOneFindingPerCategory(t *testing.T) {
	// several keyword hits within the same category still yield one finding
	cats, _ := classify(t, "cookies, tracking, analytics and advertising everywhere")
	assert.Equal(t, []string{"tracking"}, cats)
}

func TestClassify_NoFindingsOnNeutralText(t *testing.T) {
	cats, summary := classify(t, "welcome to our lovely bakery, we sell bread and cake")
	assert.Empty(t, cats)
	// the generic summary is emitted regardless of findings
	assert.Len(t, summary, 4)
}

func TestClassify_UncheckedCategoriesStaySilent(t *testing.T) {
	// content_rights and account_termination keywords have no rules here
	cats, _ := classify(t, "we may terminate your account and license your user content")
	assert.NotContains(t, cats, "content_rights")
	assert.NotContains(t, cats, "account_termination")
}

func TestClassify_Deterministic(t *testing.T) {
	text := "arbitration clause with cookies and recurring billing"
	first, firstSummary := classify(t, text)
	second, secondSummary := classify(t, text)
	assert.Equal(t, first, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestClassify_FixedSeverities(t *testing.T) {
	report, err := New().Classify(context.Background(), "binding arbitration and cookies", "t")
	require.NoError(t, err)
	require.Len(t, report.Findings, 2)

	bySev := map[string]float64{}
	for _, f := range report.Findings {
		require.NotNil(t, f.Severity)
		bySev[f.Category] = *f.Severity
	}
	assert.Equal(t, 7.0, bySev["arbitration"])
	assert.Equal(t, 4.0, bySev["tracking"])
}
