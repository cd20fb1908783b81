package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(cfg *domain.Config) *app.Container {
	loader := &testutil.MockConfigLoader{Config: cfg}
	return app.NewWithDeps(
		app.Config{WorkDir: "/test", DataDir: "/test/.kanban"},
		testutil.NewSequentialIDs("id-"),
		loader,
		testutil.NewMockConfigManager(),
		nil,
	)
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_TUISubcommand_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	var got *app.Container
	launchTUIFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	c := newTestContainer(nil)
	root := NewRootCommand(c, "test-version")
	root.SetArgs([]string{"tui"})

	require.NoError(t, root.Execute())
	assert.Same(t, c, got)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should not be called with --help")
	assert.Contains(t, buf.String(), "Board Commands:")
	assert.Contains(t, buf.String(), "replay")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()
	launchTUIFunc = func(_ *app.Container) error { return nil }

	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown key in [board]: colour"}

	root := NewRootCommand(newTestContainer(cfg), "test-version")
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown key in [board]: colour")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}
