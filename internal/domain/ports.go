package domain

// IDGenerator produces identifiers for new columns and tasks.
type IDGenerator interface {
	// NewID returns a fresh identifier that has never been returned before.
	NewID() string
}

// Logger writes diagnostic messages.
// entity is the ID of the column or task the message is about ("" for global).
type Logger interface {
	Info(entity, category, msg string)
	Debug(entity, category, msg string)
	Warn(entity, category, msg string)
	Error(entity, category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetLocalConfigInfo() ConfigInfo
	InitGlobalConfig(cfg *Config) error
	InitLocalConfig(cfg *Config) error
}

// ScriptCodec decodes replay scripts and encodes board views.
type ScriptCodec interface {
	// DecodeScript parses script content.
	DecodeScript(content []byte) (*Script, error)

	// EncodeView renders a board view in the given format ("yaml", "json" or "markdown").
	EncodeView(view BoardView, format string) ([]byte, error)
}
