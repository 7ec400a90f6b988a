package analysis

import (
	"time"
)

// ID tipe untuk Analysis
type AnalysisID string

// Finding is one detected risk clause. It is produced by a classifier and is
// untrusted: Category may not match any taxonomy entry and Severity may be
// absent or out of the nominal 1-10 range. The scorer applies the defaulting
// rules; findings are never mutated after creation.
type Finding struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Severity    *float64 `json:"severity,omitempty"`
}

// Report is the raw classifier output: a plain-language summary plus the
// detected findings. Both classifiers (model-backed and keyword-backed)
// return this shape.
type Report struct {
	Summary  []string  `json:"summary"`
	Findings []Finding `json:"risks"`
}

// Aggregate Root: Analysis
// One completed analysis run. Assembled once per request and never updated
// afterward; persisted records are append-only facts.
type Analysis struct {
	ID           AnalysisID `json:"id"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	Summary      []string   `json:"summary"`
	Findings     []Finding  `json:"risks"`
	RiskScore    int        `json:"risk_score"`
	AnalysisTime float64    `json:"analysis_time"`
	SnapshotURL  string     `json:"snapshot_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
