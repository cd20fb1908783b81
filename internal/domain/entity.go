package domain

import (
	"slices"
	"strings"
)

// EntityKind identifies what kind of board entity a gesture refers to.
type EntityKind string

const (
	EntityColumn EntityKind = "Column"
	EntityTask   EntityKind = "Task"
)

// IsValid returns true if the kind is a known value.
func (k EntityKind) IsValid() bool {
	return k == EntityColumn || k == EntityTask
}

// ParseEntityKind parses a kind name case-insensitively.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "column":
		return EntityColumn, nil
	case "task":
		return EntityTask, nil
	default:
		return "", ErrUnknownEntityKind
	}
}

// EntityRef identifies an entity in a gesture event.
// Exactly one of Column or Task is set for a ref built by ColumnRef/TaskRef;
// the payload is informational (e.g. for drag overlays) and lookups always go
// through the board.
type EntityRef struct {
	Column *Column
	Task   *Task
	Kind   EntityKind
	ID     string
}

// ColumnRef builds a reference to a column carrying the column as payload.
func ColumnRef(c Column) EntityRef {
	return EntityRef{Kind: EntityColumn, ID: c.ID, Column: &c}
}

// TaskRef builds a reference to a task carrying the task as payload.
func TaskRef(t Task) EntityRef {
	return EntityRef{Kind: EntityTask, ID: t.ID, Task: &t}
}

// Is reports whether both refs point at the same entity.
func (r EntityRef) Is(other EntityRef) bool {
	return r.Kind == other.Kind && r.ID == other.ID
}

// Equal reports whether both boards hold the same sequences.
func (b Board) Equal(other Board) bool {
	return slices.Equal(b.columns, other.columns) && slices.Equal(b.tasks, other.tasks)
}
