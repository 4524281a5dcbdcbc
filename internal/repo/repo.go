package repo

import (
	"context"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
)

// TodoRepo is the storage port the service depends on. Any adapter
// (SQLite, in-memory) must satisfy it exactly.
type TodoRepo interface {
	// Insert stores a new todo. The caller guarantees the id is fresh.
	Insert(ctx context.Context, t dom.Todo) error

	// Get returns the todo and whether it exists. Absence is not an error.
	Get(ctx context.Context, id string) (dom.Todo, bool, error)

	// List returns all todos in insertion order. Updates do not re-sort.
	List(ctx context.Context) ([]dom.Todo, error)

	// Update replaces the stored todo matching t.ID wholesale. The caller
	// guarantees the id exists.
	Update(ctx context.Context, t dom.Todo) error

	// Delete removes the todo and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
