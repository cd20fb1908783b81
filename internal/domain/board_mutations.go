package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Defaults used when creating entities.
const (
	DefaultColumnTitleFormat = "Column %d" // Formatted with the 1-based column number
	DefaultTaskText          = "Text"
)

// ColumnTitle renders the default title for the n-th column (1-based).
// A format without a verb is used as-is.
func ColumnTitle(format string, n int) string {
	if format == "" {
		format = DefaultColumnTitleFormat
	}
	if !strings.Contains(format, "%") {
		return format
	}
	return fmt.Sprintf(format, n)
}

// All mutators below are pure: they never modify the receiver's sequences
// and always return a new Board.

// CreateColumn appends a column.
func (b Board) CreateColumn(id, title string) Board {
	columns := make([]Column, 0, len(b.columns)+1)
	columns = append(columns, b.columns...)
	columns = append(columns, Column{ID: id, Title: title})
	return Board{columns: columns, tasks: slices.Clone(b.tasks)}
}

// RenameColumn replaces the title of the column. Missing IDs are a no-op.
func (b Board) RenameColumn(id, title string) Board {
	columns := slices.Clone(b.columns)
	for i := range columns {
		if columns[i].ID == id {
			columns[i].Title = title
		}
	}
	return Board{columns: columns, tasks: slices.Clone(b.tasks)}
}

// DeleteColumn removes the column from the column sequence.
// Tasks referencing it keep their ColumnID.
func (b Board) DeleteColumn(id string) Board {
	columns := slices.DeleteFunc(slices.Clone(b.columns), func(c Column) bool { return c.ID == id })
	return Board{columns: columns, tasks: slices.Clone(b.tasks)}
}

// DeleteColumnCascade removes the column and every task it owns.
func (b Board) DeleteColumnCascade(id string) Board {
	next := b.DeleteColumn(id)
	next.tasks = slices.DeleteFunc(next.tasks, func(t Task) bool { return t.ColumnID == id })
	return next
}

// CreateTask appends a task owned by columnID. The column is not validated.
func (b Board) CreateTask(id, columnID, text string) Board {
	tasks := make([]Task, 0, len(b.tasks)+1)
	tasks = append(tasks, b.tasks...)
	tasks = append(tasks, Task{ID: id, Text: text, ColumnID: columnID})
	return Board{columns: slices.Clone(b.columns), tasks: tasks}
}

// UpdateTaskText replaces the text of the task. Missing IDs are a no-op.
func (b Board) UpdateTaskText(id, text string) Board {
	tasks := slices.Clone(b.tasks)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Text = text
		}
	}
	return Board{columns: slices.Clone(b.columns), tasks: tasks}
}

// DeleteTask removes the task from the task sequence.
func (b Board) DeleteTask(id string) Board {
	tasks := slices.DeleteFunc(slices.Clone(b.tasks), func(t Task) bool { return t.ID == id })
	return Board{columns: slices.Clone(b.columns), tasks: tasks}
}

// AssignTaskColumn sets the task's owning column without moving it in the
// flat task sequence. Missing IDs are a no-op.
func (b Board) AssignTaskColumn(id, columnID string) Board {
	tasks := slices.Clone(b.tasks)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].ColumnID = columnID
		}
	}
	return Board{columns: slices.Clone(b.columns), tasks: tasks}
}

// MoveColumn moves the column with activeID to the index currently held by
// overID. Unknown IDs are a no-op.
func (b Board) MoveColumn(activeID, overID string) Board {
	from, to := b.ColumnIndex(activeID), b.ColumnIndex(overID)
	if from < 0 || to < 0 {
		return b.clone()
	}
	return Board{columns: MoveElement(b.columns, from, to), tasks: slices.Clone(b.tasks)}
}

// MoveTask moves the task with activeID to the flat-sequence index currently
// held by overID. Unknown IDs are a no-op.
func (b Board) MoveTask(activeID, overID string) Board {
	from, to := b.TaskIndex(activeID), b.TaskIndex(overID)
	if from < 0 || to < 0 {
		return b.clone()
	}
	return Board{columns: slices.Clone(b.columns), tasks: MoveElement(b.tasks, from, to)}
}

func (b Board) clone() Board {
	return NewBoard(b.columns, b.tasks)
}
