package analyses

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard/clauseguard/internal/application"
	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
)

type fakeFetcher struct {
	body []byte
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]byte, error) { return f.body, f.err }

type fakeExtractor struct {
	text  string
	title string
	err   error
}

func (e *fakeExtractor) Extract([]byte, string) (string, string, error) {
	return e.text, e.title, e.err
}

type fakeClassifier struct {
	report *domain.Report
	err    error
	calls  int
}

func (c *fakeClassifier) Classify(context.Context, string, string) (*domain.Report, error) {
	c.calls++
	return c.report, c.err
}

type fakeRepo struct {
	saved []*domain.Analysis
	err   error
}

func (r *fakeRepo) Save(_ context.Context, a *domain.Analysis) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, a)
	return nil
}

func (r *fakeRepo) Latest(context.Context, int) ([]*domain.Analysis, error) { return r.saved, nil }

func (r *fakeRepo) Paginate(context.Context, int, int) (domain.PaginatedResult, error) {
	return domain.PaginatedResult{Data: r.saved}, nil
}

type fakeFailures struct {
	saved []*domain.Failure
}

func (r *fakeFailures) Save(_ context.Context, f *domain.Failure) error {
	r.saved = append(r.saved, f)
	return nil
}

func sev(v float64) *float64 { return &v }

func longText() string { return strings.Repeat("terms and conditions ", 20) }

func newService(fetcher domain.Fetcher, extractor domain.Extractor, classifier domain.Classifier, repo domain.Repository) *Service {
	return &Service{
		Fetcher:    fetcher,
		Extractor:  extractor,
		Classifier: classifier,
		Repo:       repo,
		Clock:      application.SystemClock{},
	}
}

func TestAnalyze_HappyPath(t *testing.T) {
	report := &domain.Report{
		Summary:  []string{"p1", "p2"},
		Findings: []domain.Finding{{Category: "arbitration", Severity: sev(10)}},
	}
	repo := &fakeRepo{}
	svc := newService(
		&fakeFetcher{body: []byte("<html/>")},
		&fakeExtractor{text: longText(), title: "Acme ToS"},
		&fakeClassifier{report: report},
		repo,
	)

	a, err := svc.Analyze(context.Background(), "https://acme.example/tos")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/tos", a.URL)
	assert.Equal(t, "Acme ToS", a.Title)
	assert.Equal(t, []string{"p1", "p2"}, a.Summary)
	assert.Equal(t, 25, a.RiskScore)
	assert.NotEmpty(t, a.ID)
	assert.GreaterOrEqual(t, a.AnalysisTime, 0.0)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, a, repo.saved[0])
}

func TestAnalyze_FetchErrorSurfacesAndNothingPersisted(t *testing.T) {
	repo := &fakeRepo{}
	failures := &fakeFailures{}
	svc := newService(
		&fakeFetcher{err: errors.New("unexpected status 404")},
		&fakeExtractor{},
		&fakeClassifier{},
		repo,
	)
	svc.Failures = failures

	_, err := svc.Analyze(context.Background(), "https://gone.example")
	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "404")

	assert.Empty(t, repo.saved)
	require.Len(t, failures.saved, 1)
	assert.Equal(t, "fetch", failures.saved[0].Phase)
}

func TestAnalyze_ShortDocumentFails(t *testing.T) {
	repo := &fakeRepo{}
	classifier := &fakeClassifier{}
	svc := newService(
		&fakeFetcher{body: []byte("<html/>")},
		&fakeExtractor{text: "too short", title: "t"},
		classifier,
		repo,
	)

	_, err := svc.Analyze(context.Background(), "https://thin.example")
	require.ErrorIs(t, err, domain.ErrDocumentTooShort)

	var fe *domain.FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Zero(t, classifier.calls, "classification must not run on short documents")
	assert.Empty(t, repo.saved)
}

func TestAnalyze_PersistenceErrorIsSwallowed(t *testing.T) {
	svc := newService(
		&fakeFetcher{body: []byte("<html/>")},
		&fakeExtractor{text: longText(), title: "t"},
		&fakeClassifier{report: &domain.Report{}},
		&fakeRepo{err: errors.New("db down")},
	)

	a, err := svc.Analyze(context.Background(), "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, 0, a.RiskScore)
}

func TestAnalyze_RunsWithoutRepository(t *testing.T) {
	svc := newService(
		&fakeFetcher{body: []byte("<html/>")},
		&fakeExtractor{text: longText(), title: "t"},
		&fakeClassifier{report: &domain.Report{}},
		nil,
	)

	_, err := svc.Analyze(context.Background(), "https://acme.example")
	require.NoError(t, err)
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func TestAnalyze_UsesClockForTimestamps(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(
		&fakeFetcher{body: []byte("<html/>")},
		&fakeExtractor{text: longText(), title: "t"},
		&fakeClassifier{report: &domain.Report{}},
		nil,
	)
	svc.Clock = fixedClock{at: at}

	a, err := svc.Analyze(context.Background(), "https://acme.example")
	require.NoError(t, err)
	assert.Equal(t, at, a.CreatedAt)
	assert.Equal(t, 0.0, a.AnalysisTime)
}
