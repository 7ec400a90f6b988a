package analysis

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Latest(ctx context.Context, limit int) ([]*Analysis, error)
	Paginate(ctx context.Context, page, pageSize int) (PaginatedResult, error)
}

// FailureRepository records analyses that never produced a result
// (fetch/extract failures). Best-effort only.
type FailureRepository interface {
	Save(ctx context.Context, f *Failure) error
}

// Classifier port: turns extracted document text into a Report.
// Implementations may fail; callers decide the fallback policy.
type Classifier interface {
	Classify(ctx context.Context, text, title string) (*Report, error)
}

// Fetcher retrieves the raw page behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor turns raw HTML into plain text and a title.
type Extractor interface {
	Extract(raw []byte, url string) (text, title string, err error)
}

// SnapshotStore archives the raw fetched document (interface untuk object storage)
type SnapshotStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}
