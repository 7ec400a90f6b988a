package analyses

import (
	"context"
	"log"

	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
)

// fallbackClassifier tries the primary classifier once and, on any failure,
// discards its result entirely and delegates to the fallback. Partial output
// from a failed primary call is never merged in.
type fallbackClassifier struct {
	primary  domain.Classifier
	fallback domain.Classifier
}

// WithFallback combines two classifiers under the try/fallback policy. The
// fallback is expected to be infallible (the keyword classifier is); if it
// does fail anyway the error propagates.
func WithFallback(primary, fallback domain.Classifier) domain.Classifier {
	return &fallbackClassifier{primary: primary, fallback: fallback}
}

func (c *fallbackClassifier) Classify(ctx context.Context, text, title string) (*domain.Report, error) {
	report, err := c.primary.Classify(ctx, text, title)
	if err == nil {
		return report, nil
	}
	log.Printf("primary classification failed, using fallback analysis: %v", err)
	return c.fallback.Classify(ctx, text, title)
}
