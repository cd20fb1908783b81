package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetLocalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		dataDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeConfig(t, dataDir, configContent)

		info := NewManagerWithGlobalDir(dataDir, "").GetLocalConfigInfo()

		assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		dataDir := t.TempDir()

		info := NewManagerWithGlobalDir(dataDir, "").GetLocalConfigInfo()

		assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo_NoGlobalDir(t *testing.T) {
	info := NewManagerWithGlobalDir(t.TempDir(), "").GetGlobalConfigInfo()
	assert.Empty(t, info.Path)
	assert.False(t, info.Exists)
}

func TestManager_InitLocalConfig(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), ".kanban")
	manager := NewManagerWithGlobalDir(dataDir, "")

	require.NoError(t, manager.InitLocalConfig(domain.NewDefaultConfig()))

	content, err := os.ReadFile(filepath.Join(dataDir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `mode = "live"`)

	// Loading the generated file yields the defaults without warnings
	cfg, err := NewLoaderWithGlobalDir(dataDir, "").Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DragModeLive, cfg.Drag.Mode)

	err = manager.InitLocalConfig(domain.NewDefaultConfig())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "kanban")
	manager := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))
	assert.True(t, manager.GetGlobalConfigInfo().Exists)

	err := NewManagerWithGlobalDir(t.TempDir(), "").InitGlobalConfig(domain.NewDefaultConfig())
	assert.Error(t, err)
}
