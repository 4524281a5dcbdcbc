package memory

import (
	"context"
	"fmt"
	"sync"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo"
)

var _ repo.TodoRepo = (*TodoRepo)(nil)

// TodoRepo is an in-memory adapter of the storage port. It keeps a map for
// lookup and a separate id slice so List preserves insertion order.
type TodoRepo struct {
	mu    sync.RWMutex
	todos map[string]dom.Todo
	order []string
}

func New() *TodoRepo {
	return &TodoRepo{todos: make(map[string]dom.Todo)}
}

func (r *TodoRepo) Insert(ctx context.Context, t dom.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; ok {
		return fmt.Errorf("duplicate id %q", t.ID)
	}
	r.todos[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

func (r *TodoRepo) Get(ctx context.Context, id string) (dom.Todo, bool, error) {
	r.mu.RLock()
	t, ok := r.todos[id]
	r.mu.RUnlock()
	return t, ok, nil
}

func (r *TodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]dom.Todo, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.todos[id])
	}
	return list, nil
}

func (r *TodoRepo) Update(ctx context.Context, t dom.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; !ok {
		return fmt.Errorf("update of unknown id %q", t.ID)
	}
	r.todos[t.ID] = t
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Len reports the number of stored todos. Handy for tests asserting that a
// failed operation had no side effect.
func (r *TodoRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}
