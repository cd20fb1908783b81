package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kanban/internal/domain"
)

// ReplayScriptInput contains the parameters for replaying a script.
type ReplayScriptInput struct {
	Content []byte // Script content
}

// ReplayScriptOutput contains the result of a replay.
type ReplayScriptOutput struct {
	Labels map[string]string // Script label -> generated entity ID
	Drag   domain.DragState  // Coordinator state after the last step
	Board  domain.Board      // Final board
	Steps  int               // Number of steps applied
}

// ReplayScript applies a scripted sequence of board events to a fresh session.
type ReplayScript struct {
	codec  domain.ScriptCodec
	ids    domain.IDGenerator
	logger domain.Logger
	opts   BoardOptions
}

// NewReplayScript creates a new ReplayScript use case.
func NewReplayScript(codec domain.ScriptCodec, ids domain.IDGenerator, logger domain.Logger, opts BoardOptions) *ReplayScript {
	return &ReplayScript{
		codec:  codec,
		ids:    ids,
		logger: logger,
		opts:   opts,
	}
}

// Execute parses and replays the script.
func (uc *ReplayScript) Execute(ctx context.Context, in ReplayScriptInput) (*ReplayScriptOutput, error) {
	script, err := uc.codec.DecodeScript(in.Content)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}

	r := &replayer{
		session: NewBoardSession(uc.ids, uc.logger, uc.opts),
		labels:  make(map[string]string),
		kinds:   make(map[string]domain.EntityKind),
	}
	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.apply(step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	return &ReplayScriptOutput{
		Board:  r.session.Snapshot(),
		Drag:   r.session.Drag(),
		Labels: r.labels,
		Steps:  len(script.Steps),
	}, nil
}

// replayer resolves script labels against a session.
type replayer struct {
	session *BoardSession
	labels  map[string]string
	kinds   map[string]domain.EntityKind
}

func (r *replayer) apply(step domain.ScriptStep) error {
	switch step.Op {
	case domain.OpCreateColumn:
		col, _ := r.session.CreateColumn()
		if step.Title != "" {
			r.session.RenameColumn(col.ID, step.Title)
		}
		return r.bind(step.As, col.ID, domain.EntityColumn)
	case domain.OpRenameColumn:
		id, err := r.resolve(domain.EntityColumn, step.Column)
		if err != nil {
			return err
		}
		r.session.RenameColumn(id, step.Title)
	case domain.OpDeleteColumn:
		id, err := r.resolve(domain.EntityColumn, step.Column)
		if err != nil {
			return err
		}
		r.session.DeleteColumn(id)
	case domain.OpCreateTask:
		columnID, err := r.resolve(domain.EntityColumn, step.Column)
		if err != nil {
			return err
		}
		task, _ := r.session.CreateTask(columnID)
		if step.Text != "" {
			r.session.UpdateTaskText(task.ID, step.Text)
		}
		return r.bind(step.As, task.ID, domain.EntityTask)
	case domain.OpUpdateTask:
		id, err := r.resolve(domain.EntityTask, step.Task)
		if err != nil {
			return err
		}
		r.session.UpdateTaskText(id, step.Text)
	case domain.OpDeleteTask:
		id, err := r.resolve(domain.EntityTask, step.Task)
		if err != nil {
			return err
		}
		r.session.DeleteTask(id)
	case domain.OpDragStart:
		active, err := r.ref(step.Active)
		if err != nil {
			return err
		}
		if !r.session.DragStart(*active) {
			return fmt.Errorf("%w: cannot drag %s", domain.ErrInvalidEvent, step.Active.Label)
		}
	case domain.OpDragOver, domain.OpDragEnd:
		active, err := r.activeRef(step.Active)
		if err != nil {
			return err
		}
		over, err := r.ref(step.Over)
		if err != nil {
			return err
		}
		if step.Op == domain.OpDragOver {
			r.session.DragOver(active, over)
		} else {
			r.session.DragEnd(active, over)
		}
	}
	return nil
}

func (r *replayer) bind(label, id string, kind domain.EntityKind) error {
	if label == "" {
		return nil
	}
	if _, ok := r.labels[label]; ok {
		return fmt.Errorf("%w: label %q already used", domain.ErrInvalidEvent, label)
	}
	r.labels[label] = id
	r.kinds[label] = kind
	return nil
}

func (r *replayer) resolve(kind domain.EntityKind, label string) (string, error) {
	id, ok := r.labels[label]
	if !ok || r.kinds[label] != kind {
		return "", fmt.Errorf("%w: %s %q", domain.ErrUnknownReference, kind, label)
	}
	return id, nil
}

// ref builds an entity ref with the current payload. A nil target yields nil.
// Deleted entities still resolve by ID with an empty payload.
func (r *replayer) ref(t *domain.ScriptTarget) (*domain.EntityRef, error) {
	if t == nil {
		return nil, nil
	}
	id, err := r.resolve(t.Kind, t.Label)
	if err != nil {
		return nil, err
	}
	board := r.session.Snapshot()
	ref := domain.EntityRef{Kind: t.Kind, ID: id}
	if t.Kind == domain.EntityColumn {
		if c, ok := board.Column(id); ok {
			ref = domain.ColumnRef(c)
		}
	} else if task, ok := board.Task(id); ok {
		ref = domain.TaskRef(task)
	}
	return &ref, nil
}

// activeRef resolves the dragged entity, defaulting to the one being dragged.
func (r *replayer) activeRef(t *domain.ScriptTarget) (domain.EntityRef, error) {
	if t != nil {
		ref, err := r.ref(t)
		if err != nil {
			return domain.EntityRef{}, err
		}
		return *ref, nil
	}
	if state := r.session.Drag(); state.Active != nil {
		return *state.Active, nil
	}
	return domain.EntityRef{}, fmt.Errorf("%w: no active drag", domain.ErrInvalidEvent)
}
