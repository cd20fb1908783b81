package domain

// DragMode selects when task gestures are applied to the board.
type DragMode string

const (
	// DragModeLive reorders and reparents tasks on every drag-over.
	// Columns only move on drag-end.
	DragModeLive DragMode = "live"
	// DragModeAtomic only records drag-over targets as a preview and applies
	// every change once on drag-end.
	DragModeAtomic DragMode = "atomic"
)

// IsValid returns true if the mode is a known value.
func (m DragMode) IsValid() bool {
	return m == DragModeLive || m == DragModeAtomic
}

// DragPhase is the coordinator state.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragColumn
	DragTask
)

// String returns the phase name.
func (p DragPhase) String() string {
	switch p {
	case DragColumn:
		return "dragging_column"
	case DragTask:
		return "dragging_task"
	default:
		return "idle"
	}
}

// DragState is a read-only view of the coordinator.
type DragState struct {
	Active  *EntityRef // nil when idle
	Preview *EntityRef // Last drag-over target (nil if none)
	Phase   DragPhase
}

// DragCoordinator tracks the single entity being dragged and resolves
// drag-over and drag-end signals into board mutations.
type DragCoordinator struct {
	active  *EntityRef
	preview *EntityRef
	mode    DragMode
}

// NewDragCoordinator returns an idle coordinator.
// An invalid mode falls back to DragModeLive.
func NewDragCoordinator(mode DragMode) *DragCoordinator {
	if !mode.IsValid() {
		mode = DragModeLive
	}
	return &DragCoordinator{mode: mode}
}

// Mode returns the drag mode.
func (c *DragCoordinator) Mode() DragMode {
	return c.mode
}

// State returns the current coordinator state.
func (c *DragCoordinator) State() DragState {
	s := DragState{Phase: DragIdle}
	if c.active == nil {
		return s
	}
	active := *c.active
	s.Active = &active
	if c.preview != nil {
		preview := *c.preview
		s.Preview = &preview
	}
	if active.Kind == EntityColumn {
		s.Phase = DragColumn
	} else {
		s.Phase = DragTask
	}
	return s
}

// Start begins dragging ref. Refs with an unknown kind leave the coordinator
// unchanged and return false. A new start replaces any previous active entity.
func (c *DragCoordinator) Start(ref EntityRef) bool {
	if !ref.Kind.IsValid() || ref.ID == "" {
		return false
	}
	c.active = &ref
	c.preview = nil
	return true
}

// Over handles a drag-over signal and returns the resulting board.
// over is nil when no droppable target is under the pointer.
func (c *DragCoordinator) Over(b Board, active EntityRef, over *EntityRef) Board {
	if !c.tracks(active) {
		return b
	}
	if over != nil {
		target := *over
		c.preview = &target
	}
	if c.mode == DragModeAtomic || c.active.Kind != EntityTask {
		return b
	}
	return applyTaskOver(b, active.ID, over)
}

// End handles a drag-end signal, returns the resulting board and always
// leaves the coordinator idle.
func (c *DragCoordinator) End(b Board, active EntityRef, over *EntityRef) Board {
	tracked := c.tracks(active)
	c.active = nil
	c.preview = nil
	if !tracked || over == nil || over.ID == active.ID {
		return b
	}

	switch active.Kind {
	case EntityColumn:
		if over.Kind != EntityColumn {
			return b
		}
		return b.MoveColumn(active.ID, over.ID)
	case EntityTask:
		if c.mode == DragModeAtomic {
			return applyTaskOver(b, active.ID, over)
		}
	}
	return b
}

// Cancel returns to idle without touching the board.
func (c *DragCoordinator) Cancel() {
	c.active = nil
	c.preview = nil
}

// tracks reports whether ref is the entity currently being dragged.
func (c *DragCoordinator) tracks(ref EntityRef) bool {
	return c.active != nil && c.active.Is(ref)
}

// applyTaskOver applies the task-over-target rule.
// Over a task: take the target's column and its flat-sequence position.
// Over a column: take the column, keep the position.
func applyTaskOver(b Board, activeID string, over *EntityRef) Board {
	if over == nil || over.ID == activeID {
		return b
	}
	if b.TaskIndex(activeID) < 0 {
		return b
	}

	switch over.Kind {
	case EntityTask:
		target, ok := b.Task(over.ID)
		if !ok {
			return b
		}
		return b.AssignTaskColumn(activeID, target.ColumnID).MoveTask(activeID, over.ID)
	case EntityColumn:
		if b.ColumnIndex(over.ID) < 0 {
			return b
		}
		return b.AssignTaskColumn(activeID, over.ID)
	}
	return b
}
