package keyword

import (
	"context"
	"strings"

	"github.com/clauseguard/clauseguard/internal/domain/analysis"
)

// Classifier is the deterministic, keyword-substring risk detector used when
// the model-backed classifier is unavailable. It never fails and produces
// identical output for identical input.
//
// It intentionally checks only five of the seven taxonomy categories
// (content_rights and account_termination have no rules here) and emits a
// generic placeholder excerpt: without a model it cannot locate exact source
// spans, and an honest generic disclaimer beats fabricated specificity.
type Classifier struct{}

func New() *Classifier { return &Classifier{} }

type rule struct {
	category    string
	title       string
	description string
	excerpt     string
	severity    float64
	keywords    []string
}

// rules is a fixed subset of the taxonomy keywords, one rule per checked
// category. At most one finding per rule, no ranking among keyword hits.
var rules = []rule{
	{
		category:    "data_sharing",
		title:       "Data Sharing with Third Parties",
		description: "This document indicates your data may be shared with external companies",
		excerpt:     "Data sharing terms detected in document",
		severity:    6,
		keywords:    []string{"share", "third party", "partner", "affiliate"},
	},
	{
		category:    "arbitration",
		title:       "Mandatory Arbitration",
		description: "You may be required to resolve disputes through arbitration instead of courts",
		excerpt:     "Arbitration clauses detected in document",
		severity:    7,
		keywords:    []string{"arbitration", "binding arbitration", "dispute resolution"},
	},
	{
		category:    "auto_renewal",
		title:       "Automatic Subscription Renewal",
		description: "Your subscription may automatically renew and charge you",
		excerpt:     "Auto-renewal terms detected in document",
		severity:    5,
		keywords:    []string{"auto-renew", "automatic renewal", "recurring"},
	},
	{
		category:    "no_liability",
		title:       "Limited Company Liability",
		description: "The company limits or excludes their liability for damages",
		excerpt:     "Liability limitation clauses detected in document",
		severity:    6,
		keywords:    []string{"no liability", "disclaim", "not liable", "limitation of damages"},
	},
	{
		category:    "tracking",
		title:       "Extensive Tracking & Advertising",
		description: "The service may track your behavior for advertising purposes",
		excerpt:     "Tracking and advertising terms detected in document",
		severity:    4,
		keywords:    []string{"cookies", "tracking", "analytics", "advertising"},
	},
}

// genericSummary is returned for every document. When no model is available
// the system prefers a category-agnostic disclaimer over invented specifics.
var genericSummary = []string{
	"This is a legal document that governs your use of the service",
	"Terms include various rights and obligations for users",
	"Pattern-based analysis has identified several potential risk areas",
	"For detailed legal advice, please consult with a qualified attorney",
}

func (c *Classifier) Classify(_ context.Context, text, _ string) (*analysis.Report, error) {
	lower := strings.ToLower(text)

	report := &analysis.Report{Summary: genericSummary}
	for _, r := range rules {
		if !matchesAny(lower, r.keywords) {
			continue
		}
		severity := r.severity
		report.Findings = append(report.Findings, analysis.Finding{
			Category:    r.category,
			Title:       r.title,
			Description: r.description,
			Excerpt:     r.excerpt,
			Severity:    &severity,
		})
	}
	return report, nil
}

func matchesAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
