package domain

import (
	"fmt"
	"time"
)

// Status is the closed set of todo states. Anything else fails to parse.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// ParseStatus maps a wire token to a Status. Unknown tokens are an error,
// never a silent default.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusDone:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q: must be %q or %q", s, StatusPending, StatusDone)
}

// Toggle flips pending <-> done.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// Domain entity: the business object, independent of Gin, SQLite and Redis.
// Description is a pointer because "no description" and "empty description"
// are different things.
type Todo struct {
	ID          string
	Title       string
	Description *string
	Status      Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTodo carries input for a new item. New items always start pending,
// so there is no status field here.
type CreateTodo struct {
	Title       string
	Description *string
}

// UpdateTodo is a partial patch: nil fields are left untouched, present
// fields overwrite. Status is the raw token; the service parses it.
type UpdateTodo struct {
	Title       *string
	Description *string
	Status      *string
}
