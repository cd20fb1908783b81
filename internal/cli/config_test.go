package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container with real config infrastructure.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	container, err := app.New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container, dir
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	container, _ := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "template")
	assert.Contains(t, output, "init")
}

func TestConfigShowCommand(t *testing.T) {
	container, dir := newConfigTestContainer(t)
	dataDir := filepath.Join(dir, ".kanban")
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte("[board]\ncascade_delete = true\n"), 0o600))

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show"})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, filepath.Join(dataDir, "config.toml"))
	assert.Contains(t, output, "(not found)")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "cascade_delete = true")
	assert.Contains(t, output, "mode = 'live'")
}

func TestConfigTemplateCommand(t *testing.T) {
	cmd := newConfigTemplateCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var cfg domain.Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &cfg))
	assert.Equal(t, domain.DefaultColumnTitleFormat, cfg.Board.ColumnTitleFormat)
}

func TestConfigInitCommand(t *testing.T) {
	container, dir := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())
	path := filepath.Join(dir, ".kanban", "config.toml")
	assert.Contains(t, buf.String(), "Created config file: "+path)
	assert.FileExists(t, path)

	// Second run fails: file already exists
	cmd = newConfigCommand(container)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigInitCommand_Global(t *testing.T) {
	container, _ := newConfigTestContainer(t)

	cmd := newConfigCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init", "--global"})

	require.NoError(t, cmd.Execute())
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "kanban", "config.toml")
	assert.FileExists(t, path)
}
