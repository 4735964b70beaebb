package queryparser

import "errors"

var (
	// ErrCompletionFailed means the completion provider could not be reached or returned an error.
	ErrCompletionFailed = errors.New("completion request failed")
	// ErrMalformedResponse means the reply was not JSON or matched neither reply shape.
	ErrMalformedResponse = errors.New("malformed completion response")
)
