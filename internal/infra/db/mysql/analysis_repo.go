package mysql

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

// Save appends an analysis record. Analyses are immutable facts: the ON
// DUPLICATE clause only guards against an accidental id collision.
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO analyses
  (id, url, title, summary_json, risks_json, risk_score, analysis_time, snapshot_url, created_at)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  risk_score=VALUES(risk_score), analysis_time=VALUES(analysis_time), snapshot_url=VALUES(snapshot_url);
`
	url := stringOrDash(a.URL)
	title := stringOrDash(a.Title)
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q,
		a.ID, url, title,
		jsonOrEmpty(a.Summary, "[]"), jsonOrEmpty(a.Findings, "[]"),
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
LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

// Paginate with offset + limit (classic pagination)
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
LIMIT ? OFFSET ?;
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
		// Stored JSON was written by us; a decode failure leaves the field empty
		// rather than failing the whole listing.
		_ = json.Unmarshal([]byte(summaryJSON), &a.Summary)
		_ = json.Unmarshal([]byte(risksJSON), &a.Findings)
		out = append(out, &a)
	}
	return out, rows.Err()
}
