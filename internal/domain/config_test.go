package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultColumnTitleFormat, cfg.Board.ColumnTitleFormat)
	assert.Equal(t, DefaultTaskText, cfg.Board.DefaultTaskText)
	assert.False(t, cfg.Board.CascadeDelete)
	assert.Equal(t, DragModeLive, cfg.Drag.Mode)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Board.CascadeDelete = true
	cfg.Drag.Mode = DragModeAtomic

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "Column %d", parsed.Board.ColumnTitleFormat)
	assert.True(t, parsed.Board.CascadeDelete)
	assert.Equal(t, DragModeAtomic, parsed.Drag.Mode)
	assert.Equal(t, "info", parsed.Log.Level)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/repo/.kanban/config.toml", LocalConfigPath("/repo"))
	assert.Equal(t, "/home/u/.config/kanban/config.toml", GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, "/repo/.kanban/logs/kanban.log", GlobalLogPath(LocalDataDir("/repo")))
}
