package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo"
	"github.com/Gerhardt0011/gpt5-todo/migrations"
)

var _ repo.TodoRepo = (*TodoRepo)(nil)

// timeLayout keeps sub-second precision so a stored todo reads back equal.
const timeLayout = time.RFC3339Nano

// TodoRepo is the durable adapter of the storage port, backed by SQLite.
// A single pooled connection serializes all statements, which is what gives
// concurrent mutations on one id their atomicity.
type TodoRepo struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs migrations.
// Pass ":memory:" for an ephemeral store in tests.
func Open(path string) (*TodoRepo, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &TodoRepo{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (r *TodoRepo) Close() error {
	return r.db.Close()
}

func (r *TodoRepo) Insert(ctx context.Context, t dom.Todo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, string(t.Status),
		t.CreatedAt.UTC().Format(timeLayout), t.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepo) Get(ctx context.Context, id string) (dom.Todo, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return dom.Todo{}, false, nil
	}
	if err != nil {
		return dom.Todo{}, false, fmt.Errorf("get todo: %w", err)
	}
	return t, true, nil
}

func (r *TodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	// rowid order is insertion order; updates never move a row.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at
		FROM todos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("list todos: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TodoRepo) Update(ctx context.Context, t dom.Todo) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE todos SET title = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		t.Title, t.Description, string(t.Status),
		t.UpdatedAt.UTC().Format(timeLayout), t.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (dom.Todo, error) {
	var (
		t                    dom.Todo
		status               string
		createdAt, updatedAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &createdAt, &updatedAt); err != nil {
		return dom.Todo{}, err
	}
	t.Status = dom.Status(status)

	var err error
	if t.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return dom.Todo{}, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return dom.Todo{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return t, nil
}
