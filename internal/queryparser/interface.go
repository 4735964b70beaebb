package queryparser

import (
	"context"
	"time"
)

// Parser turns free-text scheduling requests into candidate events.
type Parser interface {
	// Parse interprets query relative to reference. A non-nil error is a fault
	// (ErrCompletionFailed, ErrMalformedResponse); a rejection is an Outcome.
	Parse(ctx context.Context, query string, reference time.Time) (Outcome, error)
}
