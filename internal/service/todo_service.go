package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/Gerhardt0011/gpt5-todo/internal/cache"
	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo"
)

// TodoService holds the business rules: validation, defaulting, partial
// merge and status transitions. Both front ends go through it.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create validates the input, assigns id, timestamps and the pending
// default, and persists the new todo. Nothing is written on validation
// failure.
func (s *TodoService) Create(ctx context.Context, in dom.CreateTodo) (dom.Todo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}

	now := time.Now().UTC()
	t := dom.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Status:      dom.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (dom.Todo, error) {
	t, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !ok {
		return dom.Todo{}, ErrNotFound
	}
	return t, nil
}

// List returns all todos in creation order, optionally restricted to a
// status. Filtering happens here, not in the adapter.
func (s *TodoService) List(ctx context.Context, filter *dom.Status) ([]dom.Todo, error) {
	if s.cache != nil {
		key := filterKey(filter)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, key); err == nil && list != nil {
				return list, nil
			}
			list, err := s.listFiltered(ctx, filter)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, key, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.listFiltered(ctx, filter)
}

func (s *TodoService) listFiltered(ctx context.Context, filter *dom.Status) ([]dom.Todo, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return list, nil
	}
	out := make([]dom.Todo, 0, len(list))
	for _, t := range list {
		if t.Status == *filter {
			out = append(out, t)
		}
	}
	return out, nil
}

// Update applies only the present fields of patch onto the stored todo and
// persists the result. A present-but-empty title and an unknown status token
// are rejected before anything is written.
func (s *TodoService) Update(ctx context.Context, id string, patch dom.UpdateTodo) (dom.Todo, error) {
	t, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !ok {
		return dom.Todo{}, ErrNotFound
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
		t.Title = title
	}
	if patch.Description != nil {
		desc := *patch.Description
		t.Description = &desc
	}
	if patch.Status != nil {
		status, err := dom.ParseStatus(*patch.Status)
		if err != nil {
			return dom.Todo{}, ErrInvalidStatus
		}
		t.Status = status
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Delete removes the todo for good. The id is never reused.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}

func filterKey(filter *dom.Status) string {
	if filter == nil {
		return "all"
	}
	return string(*filter)
}
