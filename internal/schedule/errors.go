package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingInput   = fmt.Errorf("%w: either query or event is required", ErrInvalidRequest)
	ErrMissingQuery   = fmt.Errorf("%w: query is required", ErrInvalidRequest)
	ErrMissingEvent   = fmt.Errorf("%w: event is required", ErrInvalidRequest)
	ErrAmbiguousInput = fmt.Errorf("%w: provide either query or event, not both", ErrInvalidRequest)
	ErrInvalidLimit   = fmt.Errorf("%w: limit must be a positive integer", ErrInvalidRequest)
)

// RejectionError reports a query that was understood as not schedulable.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
