package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/clauseguard/clauseguard/internal/domain/analysis"
)

type FailureRepository struct {
	db *sql.DB
}

func NewFailureRepository(db *sql.DB) *FailureRepository {
	return &FailureRepository{db: db}
}

// Save inserts a failure record
func (r *FailureRepository) Save(ctx context.Context, f *domain.Failure) error {
	const q = `
INSERT INTO analysis_failures
  (url, phase, message, created_at)
VALUES (?,?,?,?);
`
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, stringOrDash(f.URL), f.Phase, f.Message, createdAt)
	return err
}
