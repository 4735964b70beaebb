package repository

import "errors"

var (
	ErrFailedToInit   = errors.New("failed to initialize calendar client")
	ErrFailedToCreate = errors.New("failed to create event")
	ErrFailedToList   = errors.New("failed to list events")
)
