package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptStep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		step    ScriptStep
		wantErr bool
	}{
		{"create column without label", ScriptStep{Op: OpCreateColumn}, false},
		{"rename needs column", ScriptStep{Op: OpRenameColumn, Title: "x"}, true},
		{"delete column", ScriptStep{Op: OpDeleteColumn, Column: "a"}, false},
		{"create task needs column", ScriptStep{Op: OpCreateTask, As: "t"}, true},
		{"update task needs task", ScriptStep{Op: OpUpdateTask, Text: "x"}, true},
		{"delete task", ScriptStep{Op: OpDeleteTask, Task: "t"}, false},
		{"drag start needs active", ScriptStep{Op: OpDragStart}, true},
		{"drag over without active", ScriptStep{Op: OpDragOver}, false},
		{"drag end with target", ScriptStep{Op: OpDragEnd, Over: &ScriptTarget{Kind: EntityColumn, Label: "a"}}, false},
		{"incomplete target", ScriptStep{Op: OpDragStart, Active: &ScriptTarget{Kind: EntityTask}}, true},
		{"unknown op", ScriptStep{Op: "teleport"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScript_Validate(t *testing.T) {
	var empty *Script
	assert.ErrorIs(t, empty.Validate(), ErrEmptyScript)
	assert.ErrorIs(t, (&Script{}).Validate(), ErrEmptyScript)

	s := &Script{Steps: []ScriptStep{{Op: OpCreateColumn}, {Op: OpDeleteTask}}}
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Contains(t, err.Error(), "step 2")
}
