// Package domain contains core business entities and interfaces.
package domain

import "slices"

// Column is a named, orderable bucket that groups tasks.
type Column struct {
	ID    string `json:"id" yaml:"id"`       // Immutable identifier
	Title string `json:"title" yaml:"title"` // Display title
}

// Task is a piece of work belonging to exactly one column.
type Task struct {
	ID       string `json:"id" yaml:"id"`             // Immutable identifier
	Text     string `json:"text" yaml:"text"`         // Editable content
	ColumnID string `json:"columnId" yaml:"columnId"` // Owning column (lookup key, not a pointer)
}

// Board is an immutable snapshot of the ordered columns and the ordered tasks.
// Tasks are held in a single sequence spanning all columns; the order of a
// column's tasks is their order in that sequence.
// The zero value is an empty board.
type Board struct {
	columns []Column
	tasks   []Task
}

// NewBoard returns a board holding copies of the given sequences.
func NewBoard(columns []Column, tasks []Task) Board {
	return Board{
		columns: slices.Clone(columns),
		tasks:   slices.Clone(tasks),
	}
}

// Columns returns a copy of the ordered column sequence.
func (b Board) Columns() []Column {
	return slices.Clone(b.columns)
}

// Tasks returns a copy of the ordered task sequence.
func (b Board) Tasks() []Task {
	return slices.Clone(b.tasks)
}

// ColumnCount returns the number of columns.
func (b Board) ColumnCount() int {
	return len(b.columns)
}

// TaskCount returns the number of tasks across all columns.
func (b Board) TaskCount() int {
	return len(b.tasks)
}

// ColumnIndex returns the position of the column with the given ID, or -1.
func (b Board) ColumnIndex(id string) int {
	return slices.IndexFunc(b.columns, func(c Column) bool { return c.ID == id })
}

// TaskIndex returns the position of the task with the given ID in the flat
// task sequence, or -1.
func (b Board) TaskIndex(id string) int {
	return slices.IndexFunc(b.tasks, func(t Task) bool { return t.ID == id })
}

// Column returns the column with the given ID.
func (b Board) Column(id string) (Column, bool) {
	i := b.ColumnIndex(id)
	if i < 0 {
		return Column{}, false
	}
	return b.columns[i], true
}

// Task returns the task with the given ID.
func (b Board) Task(id string) (Task, bool) {
	i := b.TaskIndex(id)
	if i < 0 {
		return Task{}, false
	}
	return b.tasks[i], true
}

// TasksInColumn returns the tasks owned by the column, in display order.
func (b Board) TasksInColumn(columnID string) []Task {
	var out []Task
	for _, t := range b.tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

// OrphanedTasks returns tasks whose column no longer exists.
// Such tasks render in no column.
func (b Board) OrphanedTasks() []Task {
	var out []Task
	for _, t := range b.tasks {
		if b.ColumnIndex(t.ColumnID) < 0 {
			out = append(out, t)
		}
	}
	return out
}
