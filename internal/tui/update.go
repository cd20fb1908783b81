package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/domain"
)

// Errors shown in the status area.
var (
	errNoColumn        = errors.New("add a column first")
	errEmptyTitle      = errors.New("column title cannot be empty")
	errCannotDrag      = errors.New("nothing to pick up here")
	errNothingSelected = errors.New("nothing selected")
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, clearErrorAfter(errorDisplayTime)

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches keys by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		if _, ok := m.dragging(); ok {
			return m.handleDragMode(msg)
		}
		return m.handleNormalMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// fail shows err until the next key press or timeout.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	return m, func() tea.Msg { return MsgError{Err: err} }
}

// handleNormalMode handles keys when nothing is being dragged.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.colCursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.colCursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.taskCursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskCursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		return m.startDrag()

	case key.Matches(msg, m.keys.NewColumn):
		col, board := m.session.CreateColumn()
		m.setBoard(board)
		m.focus(domain.ColumnRef(col))
		return m, nil

	case key.Matches(msg, m.keys.NewTask):
		ref := m.pointerRef()
		if ref == nil {
			return m.fail(errNoColumn)
		}
		columnID := ref.ID
		if ref.Kind == domain.EntityTask {
			columnID = ref.Task.ColumnID
		}
		task, board := m.session.CreateTask(columnID)
		m.setBoard(board)
		m.focus(domain.TaskRef(task))
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		ref := m.pointerRef()
		if ref == nil {
			return m.fail(errNothingSelected)
		}
		m.target = ref
		m.mode = ModeConfirm
		return m, nil
	}

	return m, nil
}

// startDrag picks up the entity under the pointer.
func (m *Model) startDrag() (tea.Model, tea.Cmd) {
	if m.mode.IsInputMode() {
		return m, nil
	}
	ref := m.pointerRef()
	if ref == nil || !m.session.DragStart(*ref) {
		return m.fail(errCannotDrag)
	}
	return m, nil
}

// handleDragMode moves the pointer while dragging and turns every move into
// a drag-over. Space drops on the entity under the pointer, esc releases
// outside any target.
func (m *Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state, _ := m.dragging()
	active := *state.Active

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.setBoard(m.session.DragEnd(active, nil))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Grab):
		m.setBoard(m.session.DragEnd(active, m.pointerRef()))
		m.focus(active)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.setBoard(m.session.DragEnd(active, nil))
		m.focus(active)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.colCursor--
		m.taskCursor = -1
	case key.Matches(msg, m.keys.Right):
		m.colCursor++
		m.taskCursor = -1
	case key.Matches(msg, m.keys.Up):
		if active.Kind != domain.EntityTask {
			return m, nil
		}
		m.taskCursor--
	case key.Matches(msg, m.keys.Down):
		if active.Kind != domain.EntityTask {
			return m, nil
		}
		m.taskCursor++
	default:
		return m, nil
	}

	m.clampCursor()
	m.setBoard(m.session.DragOver(active, m.pointerRef()))
	// In live mode the dragged task moves under the pointer.
	if active.Kind == domain.EntityTask && m.session.DragMode() == domain.DragModeLive {
		m.focus(active)
	}
	return m, nil
}

// startEdit opens the input for the entity under the pointer.
func (m *Model) startEdit() (tea.Model, tea.Cmd) {
	ref := m.pointerRef()
	if ref == nil {
		return m.fail(errNothingSelected)
	}
	m.target = ref
	m.mode = ModeEdit
	if ref.Kind == domain.EntityColumn {
		m.input.Placeholder = "Column title"
		m.input.SetValue(ref.Column.Title)
	} else {
		m.input.Placeholder = "Task text"
		m.input.SetValue(ref.Task.Text)
	}
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// handleEditMode handles keys in text input mode.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		target := *m.target
		value := m.input.Value()
		if target.Kind == domain.EntityColumn {
			value = strings.TrimSpace(value)
			if value == "" {
				return m.fail(errEmptyTitle)
			}
			m.setBoard(m.session.RenameColumn(target.ID, value))
		} else {
			m.setBoard(m.session.UpdateTaskText(target.ID, value))
		}
		m.closeInput()
		m.focus(target)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = ModeNormal
	m.target = nil
	m.input.Blur()
	m.input.Reset()
}

// handleConfirmMode handles keys in the delete confirmation.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.target = nil
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		target := *m.target
		if target.Kind == domain.EntityColumn {
			m.setBoard(m.session.DeleteColumn(target.ID))
		} else {
			m.setBoard(m.session.DeleteTask(target.ID))
		}
		m.mode = ModeNormal
		m.target = nil
		return m, nil
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
		m.mode = ModeNormal
	}
	return m, nil
}
