package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Board    BoardConfig `toml:"board"`
	Drag     DragConfig  `toml:"drag"`
	Log      LogConfig   `toml:"log"`
}

// BoardConfig holds entity defaults from the [board] section.
type BoardConfig struct {
	ColumnTitleFormat string `toml:"column_title_format"` // Default column title, formatted with the column number
	DefaultTaskText   string `toml:"default_task_text"`   // Text of newly created tasks
	CascadeDelete     bool   `toml:"cascade_delete"`      // Delete a column's tasks with the column
}

// DragConfig holds drag settings from the [drag] section.
type DragConfig struct {
	Mode DragMode `toml:"mode"` // live or atomic
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultDragMode = DragModeLive
)

// Directory and file names for kanban.
const (
	AppDirName     = "kanban"      // Directory name under the user config home
	DataDirName    = ".kanban"     // Directory name for local board data
	ConfigFileName = "config.toml" // Config file name
)

// LocalDataDir returns the local data directory inside root.
func LocalDataDir(root string) string {
	return filepath.Join(root, DataDirName)
}

// LocalConfigPath returns the local config path inside root.
func LocalConfigPath(root string) string {
	return filepath.Join(LocalDataDir(root), ConfigFileName)
}

// GlobalAppDir returns the global kanban directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Board: BoardConfig{
			ColumnTitleFormat: DefaultColumnTitleFormat,
			DefaultTaskText:   DefaultTaskText,
		},
		Drag: DragConfig{
			Mode: DefaultDragMode,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// RenderConfigTemplate renders the commented config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
