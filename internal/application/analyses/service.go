package analyses

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/clauseguard/clauseguard/internal/application"
	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
)

// minDocumentChars is the smallest extracted-text size worth classifying.
// Anything shorter is a consent wall, an error page or an empty shell.
const minDocumentChars = 100

// Service implements the analysis use-case: fetch -> extract -> classify ->
// score -> persist. Each request runs its own sequential pipeline; the only
// shared state is the read-only taxonomy and the injected handles, so the
// Service is safe for concurrent use.
//
// Repo, Failures and Snapshots may be nil: persistence is best-effort and the
// service runs fine without a database or object store configured.
type Service struct {
	Fetcher    domain.Fetcher
	Extractor  domain.Extractor
	Classifier domain.Classifier
	Repo       domain.Repository
	Failures   domain.FailureRepository
	Snapshots  domain.SnapshotStore
	Clock      application.Clock
}

// Analyze runs the full pipeline for one URL. Fetch/extract failures are
// returned as *domain.FetchError and nothing is persisted for them (beyond a
// best-effort failure record). Classification cannot fail: primary-classifier
// errors are absorbed by the fallback inside the Classifier.
func (s *Service) Analyze(ctx context.Context, url string) (*domain.Analysis, error) {
	start := s.Clock.Now()

	raw, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		s.recordFailure(url, "fetch", err)
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	text, title, err := s.Extractor.Extract(raw, url)
	if err != nil {
		s.recordFailure(url, "extract", err)
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	if len(text) < minDocumentChars {
		s.recordFailure(url, "extract", domain.ErrDocumentTooShort)
		return nil, &domain.FetchError{URL: url, Err: domain.ErrDocumentTooShort}
	}

	// Cannot fail: the fallback combinator guarantees a report.
	report, err := s.Classifier.Classify(ctx, text, title)
	if err != nil {
		return nil, err
	}

	result := &domain.Analysis{
		ID:           domain.AnalysisID(uuid.New().String()),
		URL:          url,
		Title:        title,
		Summary:      report.Summary,
		Findings:     report.Findings,
		RiskScore:    domain.CalculateRiskScore(report.Findings),
		AnalysisTime: s.Clock.Now().Sub(start).Seconds(),
		CreatedAt:    s.Clock.Now(),
	}

	// Snapshot and persistence are side effects. They never block or fail the
	// response.
	if s.Snapshots != nil {
		key := time.Now().UTC().Format("2006/01/02/") + string(result.ID) + ".html"
		if snapURL, err := s.Snapshots.Put(ctx, key, raw, "text/html"); err != nil {
			log.Printf("snapshot upload error for %s: %v", url, err)
		} else {
			result.SnapshotURL = snapURL
		}
	}
	if s.Repo != nil {
		if err := s.Repo.Save(ctx, result); err != nil {
			log.Printf("database save error for %s: %v", url, err)
		}
	}

	return result, nil
}

// Latest returns the N most recently persisted analyses.
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	if s.Repo == nil {
		return nil, nil
	}
	return s.Repo.Latest(ctx, limit)
}

// List returns a page of persisted analyses.
func (s *Service) List(ctx context.Context, page, pageSize int) (domain.PaginatedResult, error) {
	if s.Repo == nil {
		return domain.PaginatedResult{Page: 1, PageSize: pageSize}, nil
	}
	return s.Repo.Paginate(ctx, page, pageSize)
}

func (s *Service) recordFailure(url, phase string, cause error) {
	if s.Failures == nil {
		return
	}
	f := &domain.Failure{
		URL:       url,
		Phase:     phase,
		Message:   cause.Error(),
		CreatedAt: s.Clock.Now(),
	}
	// Decoupled from the request context on purpose: an aborted request must
	// not lose the failure record.
	if err := s.Failures.Save(context.Background(), f); err != nil {
		log.Printf("failure record save error for %s: %v", url, err)
	}
}
