// Package cli provides the command-line interface for kanban.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupBoard = "board"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for kanban.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "Terminal Kanban board",
		Long: `kanban is an in-memory Kanban board for the terminal.

Columns hold tasks; both can be created, edited, deleted and
rearranged by picking them up and dropping them elsewhere.
Running kanban without a subcommand opens the board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
	)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupBoard

	replayCmd := newReplayCommand(c)
	replayCmd.GroupID = groupBoard

	root.AddCommand(
		configCmd,
		tuiCmd,
		replayCmd,
	)

	return root
}

// launchTUI opens the board in the terminal.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("no application container")
	}
	model := tui.New(c.NewBoardSession(), c.AppConfig)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
