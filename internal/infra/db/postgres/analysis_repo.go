package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save appends an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO analyses
  (id, url, title, summary_json, risks_json, risk_score, analysis_time, snapshot_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO UPDATE SET
  risk_score=EXCLUDED.risk_score,
  analysis_time=EXCLUDED.analysis_time,
  snapshot_url=EXCLUDED.snapshot_url;
`
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	summaryJSON, _ := json.Marshal(a.Summary)
	risksJSON, _ := json.Marshal(a.Findings)

	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.URL, a.Title, string(summaryJSON), string(risksJSON),
		a.RiskScore, a.AnalysisTime, a.SnapshotURL, createdAt,
	)
	return err
}

// Latest returns the N most recent analyses.
func (r *AnalysisRepository) Latest(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, url, title, summary_json, risks_json, risk_score, analysis_time, snapshot_url, created_at
FROM analyses
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

// Paginate returns a page of analyses ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, page, pageSize int) (domain.PaginatedResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, url, title, summary_json, risks_json, risk_score, analysis_time, snapshot_url, created_at
FROM analyses
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	analyses, err := scanAnalyses(rows)
	if err != nil {
		return domain.PaginatedResult{}, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&total); err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("getting total count: %w", err)
	}

	return domain.PaginatedResult{
		Data:       analyses,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func scanAnalyses(rows *sql.Rows) ([]*domain.Analysis, error) {
	var out []*domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		var summaryJSON, risksJSON string
		if err := rows.Scan(
			&a.ID, &a.URL, &a.Title, &summaryJSON, &risksJSON,
			&a.RiskScore, &a.AnalysisTime, &a.SnapshotURL, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		_ = json.Unmarshal([]byte(summaryJSON), &a.Summary)
		_ = json.Unmarshal([]byte(risksJSON), &a.Findings)
		out = append(out, &a)
	}
	return out, rows.Err()
}
