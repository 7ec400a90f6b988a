package analysis

import (
	"errors"
	"fmt"
)

// ErrDocumentTooShort indicates extraction produced less than the minimum
// usable amount of text (empty pages, consent walls, bot blocks).
var ErrDocumentTooShort = errors.New("document appears to be too short or empty")

// FetchError wraps any failure between the URL and usable text: network
// errors, non-2xx statuses, unparseable content, too-short documents.
// These surface to the caller as client errors and are never persisted.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error extracting content from URL %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
