package analysis

import "strings"

// defaultSeverity is applied when a finding carries no usable severity.
const defaultSeverity = 5

// NormalizeCategoryID maps free-text category labels onto taxonomy ids:
// lowercase, spaces to underscores. "Data Sharing" -> "data_sharing".
func NormalizeCategoryID(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "_")
}

// CalculateRiskScore aggregates findings into a single 0-100 score.
//
// Findings whose normalized category is unknown contribute zero. A missing
// severity defaults to 5. Each matched finding adds (severity/10)*weight;
// findings in the same category accumulate. Severity is deliberately not
// clamped to [1,10], so oversized values can overshoot a category's weight.
// The total is truncated toward zero and capped at 100.
func CalculateRiskScore(findings []Finding) int {
	var total float64

	for _, f := range findings {
		cat, ok := LookupCategory(NormalizeCategoryID(f.Category))
		if !ok {
			continue
		}
		severity := float64(defaultSeverity)
		if f.Severity != nil {
			severity = *f.Severity
		}
		total += (severity / 10) * float64(cat.Weight)
	}

	score := int(total)
	if score > 100 {
		score = 100
	}
	return score
}
