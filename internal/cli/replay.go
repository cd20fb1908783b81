package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runoshun/kanban/internal/app"
	"github.com/runoshun/kanban/internal/domain"
	"github.com/runoshun/kanban/internal/usecase"
	"github.com/spf13/cobra"
)

// Output formats for the replay command.
const (
	formatText     = "text"
	formatYAML     = "yaml"
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
)

// replayOptions holds the replay command flags.
type replayOptions struct {
	format string
	style  string
	width  int
	color  bool
}

// newReplayCommand creates the replay command.
func newReplayCommand(c *app.Container) *cobra.Command {
	var opts replayOptions

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Replay a board script and print the result",
		Long: `Replay a scripted sequence of board events against an empty board
and print the resulting board.

Use "-" as file to read the script from stdin.

Script format (YAML):

  steps:
    - {op: create_column, as: todo, title: Todo}
    - {op: create_column, as: done, title: Done}
    - {op: create_task, column: todo, as: t1, text: Write docs}
    - {op: drag_start, active: {task: t1}}
    - {op: drag_over, over: {column: done}}
    - {op: drag_end, over: {column: done}}

Ops: create_column, rename_column, delete_column, create_task,
update_task, delete_task, drag_start, drag_over, drag_end.
Entities are referenced by the label given with "as".

Output formats: text (default), yaml, json, markdown, and pretty
(markdown rendered for the terminal). --color highlights yaml, json
and markdown output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			switch opts.format {
			case formatText, formatYAML, formatJSON, formatMarkdown, formatPretty:
			default:
				return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, opts.format)
			}

			content, err := readScript(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out, err := c.ReplayScriptUseCase().Execute(cmd.Context(), usecase.ReplayScriptInput{
				Content: content,
			})
			if err != nil {
				return err
			}

			return writeReplay(cmd.OutOrStdout(), c.Codec, out, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, yaml, json, markdown, pretty")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Highlight yaml, json and markdown output")
	cmd.Flags().StringVar(&opts.style, "style", "dark", "Markdown style for pretty output (dark, light, notty, ...)")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Wrap width for pretty output")

	return cmd
}

// writeReplay prints the replayed board in the requested format.
func writeReplay(w io.Writer, codec domain.ScriptCodec, out *usecase.ReplayScriptOutput, opts replayOptions) error {
	view := out.Board.View()
	switch opts.format {
	case formatText:
		printBoardText(w, view, out.Drag)
		return nil
	case formatPretty:
		md, err := codec.EncodeView(view, formatMarkdown)
		if err != nil {
			return err
		}
		rendered, err := renderMarkdown(string(md), opts.style, opts.width)
		if err != nil {
			return err
		}
		_, _ = io.WriteString(w, rendered)
		return nil
	}

	data, err := codec.EncodeView(view, opts.format)
	if err != nil {
		return err
	}
	if opts.color {
		return highlight(w, string(data), opts.format)
	}
	_, _ = w.Write(data)
	return nil
}

func readScript(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return content, nil
}

// printBoardText writes the board as an indented outline.
func printBoardText(w io.Writer, view domain.BoardView, drag domain.DragState) {
	if len(view.Columns) == 0 {
		_, _ = fmt.Fprintln(w, "(empty board)")
	}
	for _, col := range view.Columns {
		_, _ = fmt.Fprintf(w, "%s [%s]\n", col.Title, col.ID)
		for _, task := range col.Tasks {
			_, _ = fmt.Fprintf(w, "  - %s [%s]\n", task.Text, task.ID)
		}
	}
	if len(view.Orphaned) > 0 {
		_, _ = fmt.Fprintln(w, "Orphaned tasks:")
		for _, task := range view.Orphaned {
			_, _ = fmt.Fprintf(w, "  - %s [%s] (column %s)\n", task.Text, task.ID, task.ColumnID)
		}
	}
	if drag.Active != nil {
		_, _ = fmt.Fprintf(w, "Drag: %s %s\n", drag.Phase, drag.Active.ID)
	}
}
