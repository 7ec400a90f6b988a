package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/clauseguard/clauseguard/internal/domain/analysis"
)

// wireFinding mirrors the JSON the model is asked to produce. Severity is
// kept raw because the model sometimes returns it as a quoted string, a
// float, or omits it entirely.
type wireFinding struct {
	Category    string          `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Excerpt     string          `json:"excerpt"`
	Severity    json.RawMessage `json:"severity"`
}

type wireReport struct {
	Summary []string      `json:"summary"`
	Risks   []wireFinding `json:"risks"`
}

// ParseReport extracts the JSON object from a model reply and converts it to
// a Report. The reply may wrap the object in prose, so only the substring
// from the first '{' to the last '}' is parsed.
func ParseReport(raw string) (*analysis.Report, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var wire wireReport
	if err := json.Unmarshal([]byte(raw[start:end+1]), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}

	report := &analysis.Report{Summary: wire.Summary}
	for _, f := range wire.Risks {
		report.Findings = append(report.Findings, analysis.Finding{
			Category:    f.Category,
			Title:       f.Title,
			Description: f.Description,
			Excerpt:     f.Excerpt,
			Severity:    parseSeverity(f.Severity),
		})
	}
	return report, nil
}

// parseSeverity tolerates numeric, quoted-numeric, missing, and garbage
// severities. Anything unusable comes back nil; the scorer applies the
// default.
func parseSeverity(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	// JSON null would unmarshal into a float64 without touching it; it means
	// missing, not zero.
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return &v
		}
	}
	return nil
}
