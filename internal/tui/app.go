package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/usecase"
)

// Model is the main bubbletea model for the board.
//
// The pointer is the (column, task) cell under the cursor. taskCursor -1 is
// the column header. While something is being dragged, moving the pointer
// emits drag-over events for whatever ends up under it.
type Model struct {
	// Dependencies (pointers first for alignment)
	session *usecase.BoardSession
	config  *domain.Config
	err     error
	target  *domain.EntityRef // Entity being edited or deleted

	// State
	board domain.Board

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state (smaller types last)
	mode       Mode
	width      int
	height     int
	colCursor  int
	taskCursor int
}

// New creates a new board Model on top of session.
func New(session *usecase.BoardSession, cfg *domain.Config) *Model {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	ti := textinput.New()
	ti.CharLimit = 500

	return &Model{
		session:    session,
		config:     cfg,
		board:      session.Snapshot(),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		input:      ti,
		mode:       ModeNormal,
		taskCursor: -1,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Board returns the board as last seen by the model.
func (m *Model) Board() domain.Board {
	return m.board
}

// Err returns the error being displayed, if any.
func (m *Model) Err() error {
	return m.err
}

// dragging returns the drag state and whether a drag is in progress.
func (m *Model) dragging() (domain.DragState, bool) {
	state := m.session.Drag()
	return state, state.Active != nil
}

// columnViews returns the columns with their tasks in display order.
func (m *Model) columnViews() []domain.ColumnView {
	return m.board.View().Columns
}

// pointerRef returns the entity under the pointer, or nil on an empty board.
func (m *Model) pointerRef() *domain.EntityRef {
	cols := m.columnViews()
	if m.colCursor < 0 || m.colCursor >= len(cols) {
		return nil
	}
	col := cols[m.colCursor]
	var ref domain.EntityRef
	if m.taskCursor < 0 || m.taskCursor >= len(col.Tasks) {
		ref = domain.ColumnRef(domain.Column{ID: col.ID, Title: col.Title})
	} else {
		ref = domain.TaskRef(col.Tasks[m.taskCursor])
	}
	return &ref
}

// clampCursor keeps the pointer inside the board.
func (m *Model) clampCursor() {
	cols := m.columnViews()
	if len(cols) == 0 {
		m.colCursor, m.taskCursor = 0, -1
		return
	}
	m.colCursor = max(0, min(m.colCursor, len(cols)-1))
	m.taskCursor = max(-1, min(m.taskCursor, len(cols[m.colCursor].Tasks)-1))
}

// focus moves the pointer onto ref. Unknown refs only clamp the pointer.
func (m *Model) focus(ref domain.EntityRef) {
	for ci, col := range m.columnViews() {
		if ref.Kind == domain.EntityColumn && col.ID == ref.ID {
			m.colCursor, m.taskCursor = ci, -1
			return
		}
		for ti, task := range col.Tasks {
			if ref.Kind == domain.EntityTask && task.ID == ref.ID {
				m.colCursor, m.taskCursor = ci, ti
				return
			}
		}
	}
	m.clampCursor()
}

// setBoard stores the latest snapshot and keeps the pointer valid.
func (m *Model) setBoard(b domain.Board) {
	m.board = b
	m.clampCursor()
}
