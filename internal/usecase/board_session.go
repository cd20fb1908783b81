package usecase

import (
	"fmt"
	"sync"

	"github.com/runoshun/kanban/internal/domain"
)

// BoardOptions controls entity defaults and drag behaviour of a BoardSession.
type BoardOptions struct {
	ColumnTitleFormat string
	DefaultTaskText   string
	DragMode          domain.DragMode
	CascadeDelete     bool
}

// BoardOptionsFromConfig extracts session options from the configuration.
func BoardOptionsFromConfig(cfg *domain.Config) BoardOptions {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return BoardOptions{
		ColumnTitleFormat: cfg.Board.ColumnTitleFormat,
		DefaultTaskText:   cfg.Board.DefaultTaskText,
		DragMode:          cfg.Drag.Mode,
		CascadeDelete:     cfg.Board.CascadeDelete,
	}
}

// BoardSession owns the board state for one process and is the entry point
// the presentation layer calls. Every event is applied under a lock, so each
// mutation completes before the next event is observed.
type BoardSession struct {
	ids    domain.IDGenerator
	logger domain.Logger
	drag   *domain.DragCoordinator
	opts   BoardOptions
	board  domain.Board
	mu     sync.Mutex
}

// NewBoardSession creates a session holding an empty board.
func NewBoardSession(ids domain.IDGenerator, logger domain.Logger, opts BoardOptions) *BoardSession {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if opts.DefaultTaskText == "" {
		opts.DefaultTaskText = domain.DefaultTaskText
	}
	return &BoardSession{
		ids:    ids,
		logger: logger,
		drag:   domain.NewDragCoordinator(opts.DragMode),
		opts:   opts,
	}
}

// Snapshot returns the current board.
func (s *BoardSession) Snapshot() domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Drag returns the current drag state, e.g. to render a drag overlay.
func (s *BoardSession) Drag() domain.DragState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.State()
}

// DragMode returns how drag-over events are applied.
func (s *BoardSession) DragMode() domain.DragMode {
	return s.drag.Mode()
}

// CreateColumn appends a column with a generated ID and default title.
func (s *BoardSession) CreateColumn() (domain.Column, domain.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := domain.Column{
		ID:    s.ids.NewID(),
		Title: domain.ColumnTitle(s.opts.ColumnTitleFormat, s.board.ColumnCount()+1),
	}
	s.board = s.board.CreateColumn(col.ID, col.Title)
	s.logger.Debug(col.ID, "board", fmt.Sprintf("column created: %q", col.Title))
	return col, s.board
}

// RenameColumn replaces a column title. Unknown IDs are ignored.
func (s *BoardSession) RenameColumn(id, title string) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = s.board.RenameColumn(id, title)
	s.logger.Debug(id, "board", fmt.Sprintf("column renamed: %q", title))
	return s.board
}

// DeleteColumn removes a column. Its tasks are kept unless cascade delete is enabled.
func (s *BoardSession) DeleteColumn(id string) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.CascadeDelete {
		s.board = s.board.DeleteColumnCascade(id)
		s.logger.Debug(id, "board", "column deleted with its tasks")
		return s.board
	}
	s.board = s.board.DeleteColumn(id)
	if n := len(s.board.TasksInColumn(id)); n > 0 {
		s.logger.Warn(id, "board", fmt.Sprintf("column deleted, %d task(s) orphaned", n))
	} else {
		s.logger.Debug(id, "board", "column deleted")
	}
	return s.board
}

// CreateTask appends a task with a generated ID and default text to columnID.
// The column is not validated.
func (s *BoardSession) CreateTask(columnID string) (domain.Task, domain.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:       s.ids.NewID(),
		Text:     s.opts.DefaultTaskText,
		ColumnID: columnID,
	}
	s.board = s.board.CreateTask(task.ID, task.ColumnID, task.Text)
	s.logger.Debug(task.ID, "board", fmt.Sprintf("task created in column %s", columnID))
	return task, s.board
}

// UpdateTaskText replaces a task's text. Unknown IDs are ignored.
func (s *BoardSession) UpdateTaskText(id, text string) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = s.board.UpdateTaskText(id, text)
	s.logger.Debug(id, "board", "task text updated")
	return s.board
}

// DeleteTask removes a task.
func (s *BoardSession) DeleteTask(id string) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = s.board.DeleteTask(id)
	s.logger.Debug(id, "board", "task deleted")
	return s.board
}

// DragStart begins a drag gesture on ref.
// It returns false if ref does not name a column or task.
func (s *BoardSession) DragStart(ref domain.EntityRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drag.Start(ref) {
		s.logger.Warn(ref.ID, "drag", fmt.Sprintf("drag start ignored: kind %q", ref.Kind))
		return false
	}
	s.logger.Debug(ref.ID, "drag", fmt.Sprintf("drag started (%s)", ref.Kind))
	return true
}

// DragOver handles the pointer moving over a drop target (nil = none).
func (s *BoardSession) DragOver(active domain.EntityRef, over *domain.EntityRef) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.drag.Over(s.board, active, over)
	if !next.Equal(s.board) {
		s.logger.Debug(active.ID, "drag", fmt.Sprintf("moved over %s %s", over.Kind, over.ID))
	}
	s.board = next
	return s.board
}

// DragEnd finishes the gesture. A nil over means the entity was released
// outside any drop target.
func (s *BoardSession) DragEnd(active domain.EntityRef, over *domain.EntityRef) domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.drag.End(s.board, active, over)
	if !next.Equal(s.board) {
		s.logger.Debug(active.ID, "drag", fmt.Sprintf("dropped on %s %s", over.Kind, over.ID))
	} else {
		s.logger.Debug(active.ID, "drag", "drag ended")
	}
	s.board = next
	return s.board
}
