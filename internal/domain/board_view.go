package domain

// ColumnView is a column together with the tasks it displays.
type ColumnView struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// BoardView is the render-ready shape of a board: columns in order, each with
// its tasks in order, plus tasks whose column no longer exists.
type BoardView struct {
	Columns  []ColumnView `json:"columns" yaml:"columns"`
	Orphaned []Task       `json:"orphaned,omitempty" yaml:"orphaned,omitempty"`
}

// View groups the board's tasks under their columns.
func (b Board) View() BoardView {
	v := BoardView{Columns: make([]ColumnView, 0, len(b.columns))}
	for _, c := range b.columns {
		tasks := b.TasksInColumn(c.ID)
		if tasks == nil {
			tasks = []Task{}
		}
		v.Columns = append(v.Columns, ColumnView{ID: c.ID, Title: c.Title, Tasks: tasks})
	}
	v.Orphaned = b.OrphanedTasks()
	return v
}
