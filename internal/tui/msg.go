package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

// errorDisplayTime is how long an error stays on screen.
const errorDisplayTime = 3 * time.Second

// clearErrorAfter returns a command that clears the error after d.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{}
	})
}
