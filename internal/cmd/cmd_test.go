package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/services"
	"github.com/renato0307/mama/internal/timer"
)

func TestErrorClearDelay(t *testing.T) {
	five := 5

	assert.Equal(t, 10*time.Second, errorClearDelay(nil, 10))
	assert.Equal(t, 5*time.Second, errorClearDelay(&config.Settings{ErrorClearDelay: &five}, 10))
	assert.Equal(t, 3*time.Second, errorClearDelay(&config.Settings{ErrorClearDelay: &five}, 3))
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"p", " ", "ctrl+p"}, parseKeyValues("p, space,,ctrl+p"))
	assert.Empty(t, parseKeyValues(" , "))
	assert.Equal(t, "p, space", displayKeys([]string{"p", " "}))
}

func TestSessionsListCmd_Filter(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	filter, err := (&SessionsListCmd{Limit: 5, Status: "completed", Task: "task-1", Today: true}).filter(now)

	require.NoError(t, err)
	assert.Equal(t, 5, filter.Limit)
	require.NotNil(t, filter.Status)
	assert.Equal(t, domain.StatusCompleted, *filter.Status)
	require.NotNil(t, filter.TaskID)
	assert.Equal(t, "task-1", *filter.TaskID)
	require.NotNil(t, filter.Since)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *filter.Since)
}

func TestSessionsListCmd_FilterRejectsUnknownStatus(t *testing.T) {
	_, err := (&SessionsListCmd{Status: "paused"}).filter(time.Now())

	assert.ErrorContains(t, err, "invalid status 'paused'")
}

func TestKeyBindings(t *testing.T) {
	keys, err := keyBindings(&config.Settings{Keys: config.KeyBindingsConfig{"pause": {"b"}}})
	require.NoError(t, err)
	assert.Equal(t, config.KeyBindingValue{"b"}, keys["pause"])

	_, err = keyBindings(&config.Settings{Keys: config.KeyBindingsConfig{"explode": {"e"}}})
	assert.ErrorContains(t, err, "invalid key bindings")

	keys, err = keyBindings(nil)
	assert.NoError(t, err)
	assert.Nil(t, keys)
}

func TestContainer_WiresSharedLedgerAndSeparateEngines(t *testing.T) {
	t.Setenv("MAMA_HOME", t.TempDir())
	off := false

	container, err := NewContainer(&config.Settings{SoundEnabled: &off})
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	ctx := context.Background()
	task, err := container.TaskService.Create(ctx, "Write report", 2)
	require.NoError(t, err)

	first := container.NewFocusService()
	second := container.NewFocusService()

	id, err := first.Start(ctx, services.StartFocusParams{DurationSeconds: 60, TaskID: &task.ID})
	require.NoError(t, err)
	t.Cleanup(func() { first.Abandon(context.Background()) })

	assert.Equal(t, timer.StateRunning, first.Snapshot().State)
	assert.Equal(t, timer.StateIdle, second.Snapshot().State)

	session, err := container.LedgerService.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, session.Status)
	assert.Equal(t, 60, session.PlannedDuration)

	require.NoError(t, first.Abandon(ctx))

	session, err = container.LedgerService.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, session.Status)
}

func TestContainer_RecoverOrphansHonoursSetting(t *testing.T) {
	t.Setenv("MAMA_HOME", t.TempDir())
	off := false

	container, err := NewContainer(&config.Settings{RecoverOrphans: &off, SoundEnabled: &off})
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	ctx := context.Background()
	id, err := container.LedgerService.CreateSession(ctx, nil, 1500)
	require.NoError(t, err)

	container.RecoverOrphans(ctx)
	session, err := container.LedgerService.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, session.Status)

	container.settings = &config.Settings{SoundEnabled: &off}
	container.RecoverOrphans(ctx)
	session, err = container.LedgerService.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, session.Status)
}

func TestSessionsEndCmds_ExplicitDuration(t *testing.T) {
	t.Setenv("MAMA_HOME", t.TempDir())
	off := false

	container, err := NewContainer(&config.Settings{SoundEnabled: &off})
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	ctx := context.Background()
	negative, zero, focused := -5, 0, 600

	t.Run("negative is rejected", func(t *testing.T) {
		id, err := container.LedgerService.CreateSession(ctx, nil, 1500)
		require.NoError(t, err)

		err = (&SessionsCancelCmd{Duration: &negative, ID: id}).Run(container)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)

		err = (&SessionsCompleteCmd{Duration: &negative, ID: id}).Run(container)
		assert.ErrorIs(t, err, domain.ErrInvalidDuration)

		session, err := container.LedgerService.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRunning, session.Status)
	})

	t.Run("zero is recorded", func(t *testing.T) {
		id, err := container.LedgerService.CreateSession(ctx, nil, 1500)
		require.NoError(t, err)

		require.NoError(t, (&SessionsCancelCmd{Duration: &zero, ID: id}).Run(container))

		session, err := container.LedgerService.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, session.Status)
		assert.Zero(t, session.Duration)
	})

	t.Run("unset completes with the plan", func(t *testing.T) {
		id, err := container.LedgerService.CreateSession(ctx, nil, 1500)
		require.NoError(t, err)

		require.NoError(t, (&SessionsCompleteCmd{ID: id}).Run(container))

		session, err := container.LedgerService.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, session.Status)
		assert.Equal(t, 1500, session.Duration)
	})

	t.Run("explicit value is recorded", func(t *testing.T) {
		id, err := container.LedgerService.CreateSession(ctx, nil, 1500)
		require.NoError(t, err)

		require.NoError(t, (&SessionsCompleteCmd{Duration: &focused, ID: id}).Run(container))

		session, err := container.LedgerService.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 600, session.Duration)
	})
}
