package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
	"github.com/Gerhardt0011/gpt5-todo/internal/repo/memory"
	"github.com/Gerhardt0011/gpt5-todo/internal/service"
)

func newTestModel(t *testing.T, titles ...string) (Model, *service.TodoService, *memory.TodoRepo) {
	t.Helper()
	repo := memory.New()
	svc := service.NewTodoService(repo, nil)
	for _, title := range titles {
		_, err := svc.Create(context.Background(), dom.CreateTodo{Title: title})
		require.NoError(t, err)
	}
	return NewModel(svc), svc, repo
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func TestCreate_Commit(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m = press(m, runes("n")...)
	require.Equal(t, modeCreating, m.mode)

	m = press(m, runes("walk the dog")...)
	m = press(m, key(tea.KeyTab))
	require.Equal(t, focusDescription, m.focus)
	m = press(m, runes("before lunch")...)
	m = press(m, key(tea.KeyEnter))

	assert.Equal(t, modeBrowsing, m.mode)
	assert.Empty(t, m.errMsg)

	list, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "walk the dog", list[0].Title)
	require.NotNil(t, list[0].Description)
	assert.Equal(t, "before lunch", *list[0].Description)
}

func TestCreate_CancelTouchesNothing(t *testing.T) {
	m, _, repo := newTestModel(t, "existing")

	m = press(m, runes("n")...)
	m = press(m, runes("half-typed")...)
	m = press(m, key(tea.KeyEsc))

	assert.Equal(t, modeBrowsing, m.mode)
	assert.Equal(t, 1, repo.Len(), "cancel must not write anything")
	assert.Empty(t, m.titleInput.Value())
}

func TestCreate_EmptyTitleKeepsBuffers(t *testing.T) {
	m, _, repo := newTestModel(t)

	m = press(m, runes("n")...)
	m = press(m, key(tea.KeyTab))
	m = press(m, runes("description only")...)
	m = press(m, key(tea.KeyEnter))

	// Validation failed: still creating, buffers intact, error on screen.
	assert.Equal(t, modeCreating, m.mode)
	assert.Equal(t, "description only", m.descInput.Value())
	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, 0, repo.Len())
}

func TestEdit_DescriptionOnly(t *testing.T) {
	m, svc, _ := newTestModel(t, "keep this title")
	id := m.items[0].ID

	m = press(m, runes("e")...)
	require.Equal(t, modeEditing, m.mode)
	assert.Equal(t, "keep this title", m.titleInput.Value())

	m = press(m, key(tea.KeyTab))
	m = press(m, runes("new details")...)
	m = press(m, key(tea.KeyEnter))
	require.Equal(t, modeBrowsing, m.mode)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "keep this title", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "new details", *got.Description)
}

func TestEdit_CancelLeavesStoredValue(t *testing.T) {
	m, svc, _ := newTestModel(t, "untouched")
	id := m.items[0].ID
	before, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	m = press(m, runes("e")...)
	m = press(m, runes(" scribbles")...)
	m = press(m, key(tea.KeyEsc))

	after, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestToggleStatus(t *testing.T) {
	m, svc, _ := newTestModel(t, "flip me")
	id := m.items[0].ID

	m = press(m, key(tea.KeyEnter))
	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, dom.StatusDone, got.Status)

	m = press(m, key(tea.KeyEnter))
	got, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, dom.StatusPending, got.Status)
}

func TestFilterCycleAndClamp(t *testing.T) {
	m, _, _ := newTestModel(t, "one", "two", "three")

	// Mark the last item done, with the cursor on it.
	m = press(m, key(tea.KeyDown), key(tea.KeyDown))
	require.Equal(t, 2, m.cursor)
	m = press(m, key(tea.KeyEnter))

	// All -> Pending: two visible, cursor clamped into bounds.
	m = press(m, runes("f")...)
	assert.Equal(t, filterPending, m.filter)
	assert.Len(t, m.visible, 2)
	assert.Equal(t, 1, m.cursor)

	// Pending -> Done -> All.
	m = press(m, runes("f")...)
	assert.Equal(t, filterDone, m.filter)
	assert.Len(t, m.visible, 1)
	m = press(m, runes("f")...)
	assert.Equal(t, filterAll, m.filter)
	assert.Len(t, m.visible, 3)
}

func TestCursorClampsAtBounds(t *testing.T) {
	m, _, _ := newTestModel(t, "one", "two")

	m = press(m, key(tea.KeyUp))
	assert.Equal(t, 0, m.cursor, "up at the top stays put")

	m = press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 1, m.cursor, "down at the bottom stays put")
}

func TestDelete_ReclampsSelection(t *testing.T) {
	m, svc, _ := newTestModel(t, "one", "two")

	m = press(m, key(tea.KeyDown))
	m = press(m, runes("d")...)

	list, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "one", list[0].Title)
	assert.Equal(t, 0, m.cursor)
}

func TestView_IsPure(t *testing.T) {
	m, _, _ := newTestModel(t, "one", "two")
	m = press(m, key(tea.KeyDown))

	first := m.View()
	second := m.View()
	assert.Equal(t, first, second, "same state must render identically")
}
