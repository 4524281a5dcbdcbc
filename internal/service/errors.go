package service

import "errors"

var (
	// ErrNotFound: the referenced id has no todo behind it.
	ErrNotFound = errors.New("todo not found")
	// ErrEmptyTitle: title is empty or whitespace-only after trimming.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrInvalidStatus: status token is not "pending" or "done".
	ErrInvalidStatus = errors.New(`invalid status: must be "pending" or "done"`)
)
