package analysis

import "time"

// Failure represents a persisted record of an analysis that never produced a
// result, i.e. a fetch/extract error. Stored best-effort for observability;
// never read on the request path.
type Failure struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Phase     string    `json:"phase,omitempty"` // fetch | extract
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
