package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/kanban/internal/domain"
)

// Column width bounds (content width, without border and padding).
const (
	minColumnWidth = 16
	maxColumnWidth = 32
)

// View renders the model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeEdit, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the board with any dialog below it.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewBoard())

	if orphaned := m.board.OrphanedTasks(); len(orphaned) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewOrphaned(orphaned))
	}

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeEdit:
		b.WriteString("\n")
		b.WriteString(m.viewEditDialog())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title with board counts and drag status.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Kanban")

	info := fmt.Sprintf("%d columns · %d tasks · %s drag",
		m.board.ColumnCount(), m.board.TaskCount(), m.session.DragMode())
	if state, ok := m.dragging(); ok {
		info = fmt.Sprintf("dragging %s %q · %s", strings.ToLower(string(state.Active.Kind)), m.refLabel(*state.Active), info)
	}
	right := m.styles.HeaderInfo.Render(info)

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(right), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + right)
}

// columnWidth returns the content width of a column box.
func (m *Model) columnWidth(n int) int {
	if n == 0 {
		return maxColumnWidth
	}
	// 4 = border (2) + padding (2); 1 = margin
	w := (m.width-4)/n - 5
	return max(minColumnWidth, min(w, maxColumnWidth))
}

// viewBoard renders the columns side by side.
func (m *Model) viewBoard() string {
	cols := m.columnViews()
	if len(cols) == 0 {
		return m.styles.TaskEmpty.Render(fmt.Sprintf("No columns yet. Press %s to add one.", m.keys.NewColumn.Help().Key))
	}

	state, dragging := m.dragging()
	width := m.columnWidth(len(cols))
	boxes := make([]string, 0, len(cols))
	for ci, col := range cols {
		boxes = append(boxes, m.renderColumn(ci, col, width, state, dragging))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// renderColumn renders one column box with its tasks.
func (m *Model) renderColumn(ci int, col domain.ColumnView, width int, state domain.DragState, dragging bool) string {
	focused := ci == m.colCursor
	headerSelected := focused && m.taskCursor < 0

	titleStyle := m.styles.ColumnTitle
	if headerSelected {
		titleStyle = m.styles.ColumnTitleSelected
	}
	lines := []string{
		titleStyle.Render(truncate(col.Title, width-4)) + " " +
			m.styles.ColumnCount.Render(fmt.Sprintf("(%d)", len(col.Tasks))),
	}

	if len(col.Tasks) == 0 {
		lines = append(lines, m.styles.TaskEmpty.Render("empty"))
	}
	for ti, task := range col.Tasks {
		style := m.styles.Task
		prefix := "  "
		switch {
		case dragging && state.Active.Kind == domain.EntityTask && state.Active.ID == task.ID:
			style = m.styles.TaskDragging
			prefix = "≡ "
		case isPreview(state, domain.EntityTask, task.ID):
			style = m.styles.TaskDropTarget
			prefix = "↳ "
		case focused && ti == m.taskCursor:
			style = m.styles.TaskSelected
			prefix = "> "
		}
		lines = append(lines, prefix+style.Render(truncate(task.Text, width-2)))
	}

	box := m.styles.Column
	switch {
	case dragging && state.Active.Kind == domain.EntityColumn && state.Active.ID == col.ID:
		box = m.styles.ColumnDragging
	case isPreview(state, domain.EntityColumn, col.ID):
		box = m.styles.ColumnDropTarget
	case focused:
		box = m.styles.ColumnFocused
	}
	return box.Width(width).Render(strings.Join(lines, "\n"))
}

// viewOrphaned renders tasks whose column no longer exists.
func (m *Model) viewOrphaned(tasks []domain.Task) string {
	lines := []string{m.styles.OrphanedTitle.Render(fmt.Sprintf("Orphaned tasks (%d)", len(tasks)))}
	for _, task := range tasks {
		lines = append(lines, "  "+m.styles.Task.Render(task.Text))
	}
	return m.styles.Orphaned.Render(strings.Join(lines, "\n"))
}

// viewEditDialog renders the text input dialog.
func (m *Model) viewEditDialog() string {
	title := "Edit Task"
	if m.target != nil && m.target.Kind == domain.EntityColumn {
		title = "Rename Column"
	}
	content := m.styles.DialogTitle.Render(title) + "\n" +
		m.input.View() + "\n\n" +
		m.styles.DialogPrompt.Render("enter save · esc cancel")
	return m.styles.Dialog.Render(content)
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	if m.target == nil {
		return ""
	}
	var prompt string
	if m.target.Kind == domain.EntityColumn {
		prompt = fmt.Sprintf("Delete column %q?", m.refLabel(*m.target))
		if n := len(m.board.TasksInColumn(m.target.ID)); n > 0 {
			if m.config.Board.CascadeDelete {
				prompt += fmt.Sprintf("\nIts %d task(s) will be deleted too.", n)
			} else {
				prompt += fmt.Sprintf("\nIts %d task(s) will be kept as orphaned.", n)
			}
		}
	} else {
		prompt = fmt.Sprintf("Delete task %q?", m.refLabel(*m.target))
	}
	content := m.styles.DialogTitle.Render("Confirm") + "\n" +
		m.styles.DialogPrompt.Render(prompt) + "\n\n" +
		m.styles.DialogPrompt.Render("y confirm · n cancel")
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the key hints for the current state.
func (m *Model) viewFooter() string {
	if m.mode != ModeNormal {
		return ""
	}
	if _, ok := m.dragging(); ok {
		return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.DragHelp()))
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// viewHelp renders the full help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("Drag: pick up with space, move with the arrows, drop with space. Esc releases outside the board.")
	return title + "\n\n" + body + "\n" + hint
}

// refLabel returns the display text of a ref, looked up on the current board.
func (m *Model) refLabel(ref domain.EntityRef) string {
	if ref.Kind == domain.EntityColumn {
		if c, ok := m.board.Column(ref.ID); ok {
			return c.Title
		}
	} else if t, ok := m.board.Task(ref.ID); ok {
		return t.Text
	}
	return ref.ID
}

func isPreview(state domain.DragState, kind domain.EntityKind, id string) bool {
	return state.Preview != nil && state.Preview.Kind == kind && state.Preview.ID == id &&
		(state.Active == nil || state.Active.ID != id)
}

// truncate shortens s to width cells, adding an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
