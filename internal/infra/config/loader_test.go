package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[board]
column_title_format = "Lane %d"
default_task_text = "New card"
cascade_delete = true

[drag]
mode = "atomic"

[log]
level = "debug"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, "Lane %d", cfg.Board.ColumnTitleFormat)
	assert.Equal(t, "New card", cfg.Board.DefaultTaskText)
	assert.True(t, cfg.Board.CascadeDelete)
	assert.Equal(t, domain.DragModeAtomic, cfg.Drag.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[board]
default_task_text = "From global"
cascade_delete = true

[log]
level = "warn"
`)
	writeConfig(t, dataDir, `
[board]
cascade_delete = false
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir).Load()

	require.NoError(t, err)
	assert.Equal(t, "From global", cfg.Board.DefaultTaskText)
	assert.False(t, cfg.Board.CascadeDelete, "explicit false in local config wins")
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.DefaultColumnTitleFormat, cfg.Board.ColumnTitleFormat)
}

func TestLoader_Load_UnknownKeysProduceWarnings(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[board]
colour = "red"

[theme]
name = "dark"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, "").Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"unknown key in [board]: colour", "unknown section: theme"}, cfg.Warnings)
}

func TestLoader_Load_InvalidDragMode(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[drag]\nmode = \"sideways\"\n")

	_, err := NewLoaderWithGlobalDir(dataDir, "").Load()

	assert.ErrorIs(t, err, domain.ErrInvalidDragMode)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[board\n")

	_, err := NewLoaderWithGlobalDir(dataDir, "").Load()

	assert.Error(t, err)
}

func TestLoader_LoadGlobal(t *testing.T) {
	globalDir := t.TempDir()

	_, err := NewLoaderWithGlobalDir("", globalDir).LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)

	writeConfig(t, globalDir, "[log]\nlevel = \"error\"\n")
	cfg, err := NewLoaderWithGlobalDir("", globalDir).LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)

	_, err = NewLoaderWithGlobalDir("", "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
