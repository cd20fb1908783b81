package domain

import "fmt"

// ScriptOp names a board event in a replay script.
type ScriptOp string

const (
	OpCreateColumn ScriptOp = "create_column"
	OpRenameColumn ScriptOp = "rename_column"
	OpDeleteColumn ScriptOp = "delete_column"
	OpCreateTask   ScriptOp = "create_task"
	OpUpdateTask   ScriptOp = "update_task"
	OpDeleteTask   ScriptOp = "delete_task"
	OpDragStart    ScriptOp = "drag_start"
	OpDragOver     ScriptOp = "drag_over"
	OpDragEnd      ScriptOp = "drag_end"
)

// ScriptTarget points at an entity by the label it was created with.
type ScriptTarget struct {
	Kind  EntityKind
	Label string
}

// ScriptStep is one event of a replay script.
// Entities are referenced by labels assigned with As when they are created.
// Fields are ordered to minimize memory padding.
type ScriptStep struct {
	Active *ScriptTarget // drag_*: dragged entity (optional for drag_over/drag_end)
	Over   *ScriptTarget // drag_over/drag_end: drop target (nil = none)
	Op     ScriptOp
	As     string // create_*: label for the new entity
	Column string // column label
	Task   string // task label
	Title  string // rename_column
	Text   string // update_task
}

// Script is an ordered list of board events.
type Script struct {
	Steps []ScriptStep
}

// Validate checks that the step carries the fields its op needs.
func (s ScriptStep) Validate() error {
	switch s.Op {
	case OpCreateColumn:
		return nil
	case OpRenameColumn, OpDeleteColumn:
		if s.Column == "" {
			return fmt.Errorf("%w: %s requires column", ErrInvalidEvent, s.Op)
		}
	case OpCreateTask:
		if s.Column == "" {
			return fmt.Errorf("%w: %s requires column", ErrInvalidEvent, s.Op)
		}
	case OpUpdateTask, OpDeleteTask:
		if s.Task == "" {
			return fmt.Errorf("%w: %s requires task", ErrInvalidEvent, s.Op)
		}
	case OpDragStart:
		if s.Active == nil {
			return fmt.Errorf("%w: %s requires active", ErrInvalidEvent, s.Op)
		}
	case OpDragOver, OpDragEnd:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidEvent, s.Op)
	}
	for _, t := range []*ScriptTarget{s.Active, s.Over} {
		if t != nil && (!t.Kind.IsValid() || t.Label == "") {
			return fmt.Errorf("%w: %s has an incomplete target", ErrInvalidEvent, s.Op)
		}
	}
	return nil
}

// Validate checks every step.
func (s *Script) Validate() error {
	if s == nil || len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
