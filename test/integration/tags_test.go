package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/test/integration/harness"
)

type tagRecord struct {
	Color string `json:"color"`
	Name  string `json:"name"`
}

func TestTags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "add tag with default color",
			args:         []string{"tags", "add", "work"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Tag 'work' added (#FF6347)")
			},
		},
		{
			name:         "add tag upper-cases color",
			args:         []string{"tags", "add", "study", "--color", "#00ff00"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "#00FF00")
			},
		},
		{
			name:         "add tag with invalid color fails",
			args:         []string{"tags", "add", "bad", "--color", "green"},
			wantExitCode: 1,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "invalid tag color")
			},
		},
		{
			name:         "list with no tags",
			args:         []string{"tags", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No tags.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestTagsDuplicateNameFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "work"))

	result := harness.RunCommand(t, env, "tags", "add", "work")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "tag already exists")
}

func TestTagsAttachShowDetach(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	task := harness.AddTask(t, env, "Write report")
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "work", "--color", "#112233"))

	result := harness.RunCommand(t, env, "tags", "attach", "work", task.ID)
	harness.AssertSuccess(t, result)

	// Attaching twice is harmless
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "attach", "work", task.ID))

	result = harness.RunCommand(t, env, "tags", "show", task.ID, "--format", "json")
	harness.AssertSuccess(t, result)
	var tags []tagRecord
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, tagRecord{Color: "#112233", Name: "work"}, tags[0])

	tasks := harness.ListTasks(t, env, false)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"work"}, tasks[0].Tags)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "detach", "work", task.ID))

	result = harness.RunCommand(t, env, "tags", "show", task.ID)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No tags.")
}

func TestTagsAttachUnknownTaskFails(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tags", "add", "work"))

	result := harness.RunCommand(t, env, "tags", "attach", "work", "no-such-task")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "task not found")
}
