// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/kanban/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the local .kanban directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/kanban)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalAppDir(configHome)
}

// Load returns the merged configuration.
// Local config takes precedence over global config, which takes precedence over defaults.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadLayer(l.globalPath())
	if err != nil {
		return nil, err
	}
	local, err := l.loadLayer(l.localPath())
	if err != nil {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	for _, ly := range []*layer{global, local} {
		if ly != nil {
			base = mergeConfigs(base, ly)
		}
	}

	if !base.Drag.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDragMode, base.Drag.Mode)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.globalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	ly, err := l.loadFile(path)
	if err != nil {
		return nil, err
	}
	return mergeConfigs(domain.NewDefaultConfig(), ly), nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func (l *Loader) localPath() string {
	if l.dataDir == "" {
		return ""
	}
	return filepath.Join(l.dataDir, domain.ConfigFileName)
}

// loadLayer loads a file, treating a missing file as an absent layer.
func (l *Loader) loadLayer(path string) (*layer, error) {
	if path == "" {
		return nil, nil
	}
	ly, err := l.loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ly, nil
}

// loadFile loads a configuration layer from a file.
func (l *Loader) loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRaw(raw), nil
}

// layer is one parsed config file. Fields are only applied when set.
type layer struct {
	columnTitleFormat *string
	defaultTaskText   *string
	cascadeDelete     *bool
	dragMode          *string
	logLevel          *string
	warnings          []string
}

// convertRaw converts the raw map to a config layer and collects warnings.
func convertRaw(raw map[string]any) *layer {
	res := &layer{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "board":
			for k, v := range m {
				switch k {
				case "column_title_format":
					if s, ok := v.(string); ok {
						res.columnTitleFormat = &s
					}
				case "default_task_text":
					if s, ok := v.(string); ok {
						res.defaultTaskText = &s
					}
				case "cascade_delete":
					if b, ok := v.(bool); ok {
						res.cascadeDelete = &b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [board]: %s", k))
				}
			}
		case "drag":
			for k, v := range m {
				switch k {
				case "mode":
					if s, ok := v.(string); ok {
						res.dragMode = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [drag]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.logLevel = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}

// mergeConfigs applies the set fields of override on top of base.
func mergeConfigs(base *domain.Config, override *layer) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.warnings...)

	if override.columnTitleFormat != nil {
		result.Board.ColumnTitleFormat = *override.columnTitleFormat
	}
	if override.defaultTaskText != nil {
		result.Board.DefaultTaskText = *override.defaultTaskText
	}
	if override.cascadeDelete != nil {
		result.Board.CascadeDelete = *override.cascadeDelete
	}
	if override.dragMode != nil && *override.dragMode != "" {
		result.Drag.Mode = domain.DragMode(*override.dragMode)
	}
	if override.logLevel != nil && *override.logLevel != "" {
		result.Log.Level = *override.logLevel
	}
	return &result
}
