// Package tui provides the terminal board for kanban.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Navigation and dragging
	ModeEdit                // Text input for a column title or task text
	ModeConfirm             // Delete confirmation
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeEdit:
		return "edit"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
// Drag gestures cannot start while an input mode is active.
func (m Mode) IsInputMode() bool {
	return m == ModeEdit
}
