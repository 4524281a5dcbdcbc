package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	dom "github.com/Gerhardt0011/gpt5-todo/internal/domain"
	"github.com/Gerhardt0011/gpt5-todo/internal/service"
)

// mode is the modal state. Creating and Editing share the form; Editing
// additionally remembers which id it is editing.
type mode int

const (
	modeBrowsing mode = iota
	modeCreating
	modeEditing
)

// viewFilter restricts which items the list shows. It never touches
// stored data.
type viewFilter int

const (
	filterAll viewFilter = iota
	filterPending
	filterDone
)

func (f viewFilter) String() string {
	switch f {
	case filterPending:
		return "Pending"
	case filterDone:
		return "Done"
	}
	return "All"
}

func (f viewFilter) next() viewFilter {
	switch f {
	case filterAll:
		return filterPending
	case filterPending:
		return filterDone
	}
	return filterAll
}

func (f viewFilter) matches(s dom.Status) bool {
	switch f {
	case filterPending:
		return s == dom.StatusPending
	case filterDone:
		return s == dom.StatusDone
	}
	return true
}

// focusField says which form input consumes typed characters.
type focusField int

const (
	focusTitle focusField = iota
	focusDescription
)

// Model is the Bubble Tea model for the todo TUI. The event loop is
// single-threaded: each key is handled to completion (including service
// calls) before the next one is read, and View is a pure function of the
// fields below.
type Model struct {
	svc *service.TodoService

	items   []dom.Todo // full snapshot, creation order
	visible []int      // indices into items matching the filter
	cursor  int        // position within visible; clamped, never wraps

	mode      mode
	filter    viewFilter
	focus     focusField
	editingID string

	titleInput textinput.Model
	descInput  textinput.Model

	errMsg string
	width  int
	height int
}

func NewModel(svc *service.TodoService) Model {
	ti := textinput.New()
	ti.Placeholder = "title"
	ti.CharLimit = 0
	ti.Width = 40

	di := textinput.New()
	di.Placeholder = "description"
	di.CharLimit = 0
	di.Width = 40

	m := Model{
		svc:        svc,
		titleInput: ti,
		descInput:  di,
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reload refreshes the snapshot from the service and re-clamps the cursor
// into the (possibly shrunken) filtered list.
func (m *Model) reload() {
	list, err := m.svc.List(context.Background(), nil)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.items = list
	m.recomputeVisible()
}

func (m *Model) recomputeVisible() {
	m.visible = m.visible[:0]
	for i, t := range m.items {
		if m.filter.matches(t.Status) {
			m.visible = append(m.visible, i)
		}
	}
	if len(m.visible) == 0 {
		m.cursor = 0
	} else if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
}

// selected returns the todo under the cursor, if any.
func (m *Model) selected() (dom.Todo, bool) {
	if m.cursor >= len(m.visible) {
		return dom.Todo{}, false
	}
	return m.items[m.visible[m.cursor]], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeBrowsing {
			return m.updateBrowsing(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor+1 < len(m.visible) {
			m.cursor++
		}

	case "enter", " ":
		if t, ok := m.selected(); ok {
			status := string(t.Status.Toggle())
			if _, err := m.svc.Update(context.Background(), t.ID, dom.UpdateTodo{Status: &status}); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.reload()
		}

	case "n":
		m.mode = modeCreating
		m.focus = focusTitle
		m.errMsg = ""
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.titleInput.Focus()
		m.descInput.Blur()

	case "e":
		if t, ok := m.selected(); ok {
			m.mode = modeEditing
			m.editingID = t.ID
			m.focus = focusTitle
			m.errMsg = ""
			m.titleInput.SetValue(t.Title)
			if t.Description != nil {
				m.descInput.SetValue(*t.Description)
			} else {
				m.descInput.SetValue("")
			}
			m.titleInput.Focus()
			m.descInput.Blur()
		}

	case "d":
		if t, ok := m.selected(); ok {
			if err := m.svc.Delete(context.Background(), t.ID); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			if m.cursor > 0 {
				m.cursor--
			}
			m.reload()
		}

	case "f":
		m.filter = m.filter.next()
		m.recomputeVisible()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel discards the buffers without any service call.
		m.mode = modeBrowsing
		m.editingID = ""
		m.errMsg = ""
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		return m, nil

	case "tab", "shift+tab":
		if m.focus == focusTitle {
			m.focus = focusDescription
			m.titleInput.Blur()
			m.descInput.Focus()
		} else {
			m.focus = focusTitle
			m.descInput.Blur()
			m.titleInput.Focus()
		}
		return m, nil

	case "enter":
		return m.commit()
	}

	// Everything else goes into the focused buffer.
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

// commit submits the buffers to the service. On a validation error the
// mode and buffers stay as they are and the error shows inline; nothing is
// ever written before this point.
func (m Model) commit() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch m.mode {
	case modeCreating:
		in := dom.CreateTodo{Title: m.titleInput.Value()}
		if desc := m.descInput.Value(); desc != "" {
			in.Description = &desc
		}
		if _, err := m.svc.Create(ctx, in); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

	case modeEditing:
		title := m.titleInput.Value()
		desc := m.descInput.Value()
		patch := dom.UpdateTodo{Title: &title, Description: &desc}
		if _, err := m.svc.Update(ctx, m.editingID, patch); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
	}

	m.mode = modeBrowsing
	m.editingID = ""
	m.errMsg = ""
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.reload()
	return m, nil
}
