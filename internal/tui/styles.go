package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	TextNormal    lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	TextNormal:    lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Columns
	Column              lipgloss.Style
	ColumnFocused       lipgloss.Style
	ColumnDragging      lipgloss.Style
	ColumnDropTarget    lipgloss.Style
	ColumnTitle         lipgloss.Style
	ColumnTitleSelected lipgloss.Style
	ColumnCount         lipgloss.Style

	// Tasks
	Task           lipgloss.Style
	TaskSelected   lipgloss.Style
	TaskDragging   lipgloss.Style
	TaskDropTarget lipgloss.Style
	TaskEmpty      lipgloss.Style

	// Orphaned tasks
	Orphaned      lipgloss.Style
	OrphanedTitle lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Colors.Muted).
		Padding(0, 1).
		MarginRight(1)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Column: column,

		ColumnFocused: column.
			BorderForeground(Colors.Secondary),

		ColumnDragging: column.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Colors.Warning),

		ColumnDropTarget: column.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Colors.Success),

		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),

		ColumnTitleSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		ColumnCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Task: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TaskDragging: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Background).
			Background(Colors.Warning),

		TaskDropTarget: lipgloss.NewStyle().
			Underline(true).
			Foreground(Colors.Success),

		TaskEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Orphaned: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Error).
			Padding(0, 1).
			MarginTop(1),

		OrphanedTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
