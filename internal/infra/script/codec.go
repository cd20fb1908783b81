// Package script reads board replay scripts and writes board views.
package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/runoshun/kanban/internal/domain"
	"gopkg.in/yaml.v3"
)

// Output formats supported by EncodeView.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Codec implements domain.ScriptCodec with YAML scripts.
type Codec struct{}

// Ensure Codec implements domain.ScriptCodec interface.
var _ domain.ScriptCodec = (*Codec)(nil)

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// scriptFile is the on-disk script layout.
type scriptFile struct {
	Steps []stepData `yaml:"steps"`
}

// stepData is one step as written in a script.
// Targets are single-key maps such as {task: t1} or {column: todo}.
type stepData struct {
	Active map[string]string `yaml:"active"`
	Over   map[string]string `yaml:"over"`
	Op     string            `yaml:"op"`
	As     string            `yaml:"as"`
	Column string            `yaml:"column"`
	Task   string            `yaml:"task"`
	Title  string            `yaml:"title"`
	Text   string            `yaml:"text"`
}

// DecodeScript parses YAML script content.
// JSON is accepted as well since it is valid YAML.
func (c *Codec) DecodeScript(content []byte) (*domain.Script, error) {
	if strings.TrimSpace(string(content)) == "" {
		return nil, domain.ErrEmptyScript
	}

	var file scriptFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	s := &domain.Script{Steps: make([]domain.ScriptStep, 0, len(file.Steps))}
	for i, data := range file.Steps {
		step, err := toStep(data)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func toStep(data stepData) (domain.ScriptStep, error) {
	active, err := toTarget(data.Active)
	if err != nil {
		return domain.ScriptStep{}, fmt.Errorf("active: %w", err)
	}
	over, err := toTarget(data.Over)
	if err != nil {
		return domain.ScriptStep{}, fmt.Errorf("over: %w", err)
	}
	return domain.ScriptStep{
		Active: active,
		Over:   over,
		Op:     domain.ScriptOp(strings.TrimSpace(data.Op)),
		As:     data.As,
		Column: data.Column,
		Task:   data.Task,
		Title:  data.Title,
		Text:   data.Text,
	}, nil
}

func toTarget(m map[string]string) (*domain.ScriptTarget, error) {
	if len(m) == 0 {
		return nil, nil
	}
	if len(m) > 1 {
		return nil, fmt.Errorf("%w: target must name exactly one entity", domain.ErrInvalidEvent)
	}
	for k, label := range m {
		kind, err := domain.ParseEntityKind(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, k)
		}
		return &domain.ScriptTarget{Kind: kind, Label: label}, nil
	}
	return nil, nil
}

// EncodeView renders the view as YAML, indented JSON or a Markdown outline.
func (c *Codec) EncodeView(view domain.BoardView, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML:
		data, err := yaml.Marshal(&view)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatMarkdown, "md":
		return []byte(markdownView(view)), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// markdownView renders one heading per column and a bullet per task.
func markdownView(view domain.BoardView) string {
	var b strings.Builder
	b.WriteString("# Board\n")
	if len(view.Columns) == 0 {
		b.WriteString("\n_No columns._\n")
	}
	for _, col := range view.Columns {
		fmt.Fprintf(&b, "\n## %s `%s`\n\n", col.Title, col.ID)
		if len(col.Tasks) == 0 {
			b.WriteString("_empty_\n")
		}
		for _, task := range col.Tasks {
			fmt.Fprintf(&b, "- %s `%s`\n", task.Text, task.ID)
		}
	}
	if len(view.Orphaned) > 0 {
		b.WriteString("\n## Orphaned tasks\n\n")
		for _, task := range view.Orphaned {
			fmt.Fprintf(&b, "- %s `%s` (column `%s`)\n", task.Text, task.ID, task.ColumnID)
		}
	}
	return b.String()
}
