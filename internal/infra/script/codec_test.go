package script

import (
	"encoding/json"
	"testing"

	"github.com/runoshun/kanban/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCodec_DecodeScript(t *testing.T) {
	content := `
steps:
  - op: create_column
    as: todo
    title: Todo
  - op: create_task
    column: todo
    as: t1
    text: Write docs
  - op: drag_start
    active: {task: t1}
  - op: drag_over
    over: {Column: todo}
  - op: drag_end
`
	s, err := NewCodec().DecodeScript([]byte(content))
	require.NoError(t, err)
	require.Len(t, s.Steps, 5)

	assert.Equal(t, domain.OpCreateColumn, s.Steps[0].Op)
	assert.Equal(t, "todo", s.Steps[0].As)
	assert.Equal(t, "Todo", s.Steps[0].Title)

	assert.Equal(t, "todo", s.Steps[1].Column)
	assert.Equal(t, "Write docs", s.Steps[1].Text)

	require.NotNil(t, s.Steps[2].Active)
	assert.Equal(t, domain.ScriptTarget{Kind: domain.EntityTask, Label: "t1"}, *s.Steps[2].Active)

	assert.Nil(t, s.Steps[3].Active)
	require.NotNil(t, s.Steps[3].Over)
	assert.Equal(t, domain.EntityColumn, s.Steps[3].Over.Kind)

	assert.Nil(t, s.Steps[4].Over)
	require.NoError(t, s.Validate())
}

func TestCodec_DecodeScript_AcceptsJSON(t *testing.T) {
	content := `{"steps": [{"op": "create_column", "as": "a"}]}`

	s, err := NewCodec().DecodeScript([]byte(content))

	require.NoError(t, err)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, "a", s.Steps[0].As)
}

func TestCodec_DecodeScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "  \n", wantErr: domain.ErrEmptyScript},
		{name: "unknown kind", content: "steps:\n  - op: drag_start\n    active: {card: x}\n", wantErr: domain.ErrUnknownEntityKind},
		{name: "two targets", content: "steps:\n  - op: drag_start\n    active: {task: x, column: y}\n", wantErr: domain.ErrInvalidEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().DecodeScript([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := NewCodec().DecodeScript([]byte("steps: [\n"))
		assert.ErrorContains(t, err, "parse script")
	})
}

func TestCodec_EncodeView(t *testing.T) {
	b := domain.NewBoard(
		[]domain.Column{{ID: "a", Title: "Todo"}},
		[]domain.Task{{ID: "t1", Text: "Hi", ColumnID: "a"}, {ID: "t2", Text: "Lost", ColumnID: "gone"}},
	)
	view := b.View()

	t.Run("yaml", func(t *testing.T) {
		data, err := NewCodec().EncodeView(view, "YAML")
		require.NoError(t, err)

		var got domain.BoardView
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, view, got)
		assert.Contains(t, string(data), "columnId: a")
	})

	t.Run("json", func(t *testing.T) {
		data, err := NewCodec().EncodeView(view, FormatJSON)
		require.NoError(t, err)

		var got domain.BoardView
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, view, got)
		assert.Contains(t, string(data), `"orphaned"`)
	})

	t.Run("markdown", func(t *testing.T) {
		data, err := NewCodec().EncodeView(view, FormatMarkdown)
		require.NoError(t, err)

		want := "# Board\n" +
			"\n## Todo `a`\n\n" +
			"- Hi `t1`\n" +
			"\n## Orphaned tasks\n\n" +
			"- Lost `t2` (column `gone`)\n"
		assert.Equal(t, want, string(data))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewCodec().EncodeView(view, "xml")
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	})
}

func TestCodec_EncodeView_MarkdownEmpty(t *testing.T) {
	b := domain.NewBoard([]domain.Column{{ID: "a", Title: "Todo"}}, nil)

	data, err := NewCodec().EncodeView(b.View(), "md")
	require.NoError(t, err)
	assert.Equal(t, "# Board\n\n## Todo `a`\n\n_empty_\n", string(data))

	data, err = NewCodec().EncodeView(domain.BoardView{}, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# Board\n\n_No columns._\n", string(data))
}
