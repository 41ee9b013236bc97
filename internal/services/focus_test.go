package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/internal/domain"
	portsmocks "github.com/renato0307/mama/internal/ports/mocks"
	"github.com/renato0307/mama/internal/timer"
	"github.com/renato0307/mama/internal/timer/timertest"
)

type focusFixture struct {
	clock   *timertest.Clock
	engine  *timer.Engine
	ledger  *SessionLedger
	prefs   *portsmocks.MockPreferencesRepository
	service *FocusService
	sound   *portsmocks.MockSoundPlayer
	tasks   *portsmocks.MockTaskWriter
	writer  *portsmocks.MockSessionWriter
}

func newFocusFixture(t *testing.T, prefs domain.Preferences, soundEnabled bool) *focusFixture {
	t.Helper()

	f := &focusFixture{
		clock: timertest.NewClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)),
		prefs: portsmocks.NewMockPreferencesRepository(t),
		sound: portsmocks.NewMockSoundPlayer(t),
		tasks: portsmocks.NewMockTaskWriter(t),
	}

	ledger, _, writer := newTestLedger(t)
	f.ledger = ledger
	f.writer = writer
	f.engine = timer.New(timer.Config{Clock: f.clock})
	t.Cleanup(f.engine.Reset)

	f.prefs.EXPECT().LoadPreferences(mock.Anything).Return(&prefs, nil).Maybe()
	f.service = NewFocusService(
		f.engine,
		ledger,
		NewPreferencesService(f.prefs, portsmocks.NewMockPreferencesFile(t)),
		f.tasks,
		f.sound,
		soundEnabled,
	)
	return f
}

func (f *focusFixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.service.Refresh()
}

// numberSessions makes the ledger hand out session-1, session-2, ...
func (f *focusFixture) numberSessions() {
	n := 0
	f.ledger.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}

func drainEvents(s *FocusService) []FocusEventType {
	var types []FocusEventType
	for {
		select {
		case ev := <-s.Events():
			types = append(types, ev.Type)
		default:
			return types
		}
	}
}

func TestFocusStart(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)
	taskID := "task-1"

	f.writer.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.PlannedDuration == 1500 && s.TaskID != nil && *s.TaskID == taskID
	})).Return(nil)

	id, err := f.service.Start(context.Background(), StartFocusParams{TaskID: &taskID})

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateRunning, snap.State)
	assert.Equal(t, "session-1", snap.SessionID)
	assert.Equal(t, 1500, snap.DurationSeconds)
	assert.Equal(t, &taskID, snap.TaskID)
}

func TestFocusStart_DurationOverride(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.PlannedDuration == 600
	})).Return(nil)

	_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 600})

	require.NoError(t, err)
	assert.Equal(t, 600, f.service.Snapshot().DurationSeconds)
}

func TestFocusStart_CreateFailureLeavesEngineIdle(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.NewStorageError("create session", errors.New("database is locked")))

	id, err := f.service.Start(context.Background(), StartFocusParams{})

	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
	assert.Empty(t, id)
	assert.Equal(t, timer.StateIdle, f.engine.State())
	assert.Empty(t, f.service.Snapshot().SessionID)
}

func TestFocusStart_PreferencesFailure(t *testing.T) {
	engine := timer.New(timer.Config{Clock: timertest.NewClock(time.Now())})
	ledger, _, _ := newTestLedger(t)
	prefsRepo := portsmocks.NewMockPreferencesRepository(t)
	prefsRepo.EXPECT().LoadPreferences(mock.Anything).Return(nil, errors.New("boom"))

	service := NewFocusService(
		engine,
		ledger,
		NewPreferencesService(prefsRepo, portsmocks.NewMockPreferencesFile(t)),
		portsmocks.NewMockTaskWriter(t),
		portsmocks.NewMockSoundPlayer(t),
		true,
	)

	_, err := service.Start(context.Background(), StartFocusParams{})

	require.Error(t, err)
	assert.Equal(t, timer.StateIdle, engine.State())
}

func TestFocusStart_RejectsSecondActiveSession(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)
	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	_, err = f.service.Start(context.Background(), StartFocusParams{})
	assert.ErrorIs(t, err, ErrFocusInProgress)

	f.service.Pause()
	_, err = f.service.Start(context.Background(), StartFocusParams{})
	assert.ErrorIs(t, err, ErrFocusInProgress)
}

func TestFocusHalfway_PlaysCueForMomMode(t *testing.T) {
	tests := []struct {
		mode domain.MomMode
		cue  domain.SoundCue
	}{
		{domain.MomModeStandard, domain.SoundMagic},
		{domain.MomModeStrict, domain.SoundFart},
		{domain.MomModeGentle, domain.SoundNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			prefs := domain.DefaultPreferences()
			prefs.MomMode = tt.mode
			f := newFocusFixture(t, prefs, true)
			f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			if tt.cue != domain.SoundNone {
				f.sound.EXPECT().PlayCue(tt.cue).Return(nil).Once()
			}

			_, err := f.service.Start(context.Background(), StartFocusParams{})
			require.NoError(t, err)

			f.advance(749 * time.Second)
			assert.Empty(t, drainEvents(f.service))

			f.advance(time.Second)
			f.advance(10 * time.Second)

			assert.Equal(t, []FocusEventType{FocusEventHalfway}, drainEvents(f.service))
			assert.True(t, f.service.Snapshot().HalfwayFired)
		})
	}
}

func TestFocusComplete(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)
	taskID := "task-1"

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil).Once()
	f.tasks.EXPECT().IncrementPomodoro(mock.Anything, taskID).Return(nil).Once()
	f.sound.EXPECT().PlayCue(domain.SoundMagic).Return(nil).Once()
	f.sound.EXPECT().PlayCue(domain.SoundBell).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{TaskID: &taskID})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	assert.Equal(t, []FocusEventType{FocusEventHalfway, FocusEventCompleted}, drainEvents(f.service))

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateCompleted, snap.State)
	assert.Equal(t, 1500, snap.ElapsedSeconds)
	assert.Empty(t, snap.SessionID)
	assert.False(t, snap.PendingCompletion)
}

func TestFocusComplete_AlarmSoundPreference(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.AlarmSound = "cheer"
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).Return(nil)
	f.sound.EXPECT().PlayCue(domain.SoundCheer).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
	require.NoError(t, err)

	f.advance(2 * time.Minute)

	assert.Equal(t, timer.StateCompleted, f.engine.State())
}

func TestFocusComplete_SoundDisabled(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), false)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil)

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	assert.Equal(t, timer.StateCompleted, f.engine.State())
}

func TestFocusComplete_SoundFailureIsIgnored(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil)
	f.sound.EXPECT().PlayCue(domain.SoundBell).Return(errors.New("no audio device"))

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	assert.Equal(t, []FocusEventType{FocusEventHalfway, FocusEventCompleted}, drainEvents(f.service))
}

func TestFocusComplete_FailureIsKeptPending(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)
	taskID := "task-1"

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).
		Return(domain.NewStorageError("finish session", errors.New("disk full"))).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{TaskID: &taskID})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateCompleted, snap.State)
	assert.True(t, snap.PendingCompletion)
	assert.Equal(t, []FocusEventType{FocusEventHalfway, FocusEventCompletionFailed}, drainEvents(f.service))

	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil).Once()
	f.tasks.EXPECT().IncrementPomodoro(mock.Anything, taskID).Return(nil).Once()

	require.NoError(t, f.service.RetryPending(context.Background()))
	assert.False(t, f.service.Snapshot().PendingCompletion)

	require.NoError(t, f.service.RetryPending(context.Background()))
}

func TestFocusRetryPending_StillFailing(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).
		Return(errors.New("disk full")).Times(2)

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)
	f.advance(1500 * time.Second)

	require.Error(t, f.service.RetryPending(context.Background()))
	assert.True(t, f.service.Snapshot().PendingCompletion)
}

func TestFocusRetryPending_AlreadyEnded(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).
		Return(errors.New("disk full")).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)
	f.advance(1500 * time.Second)

	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).
		Return(domain.ErrSessionEnded).Once()

	require.NoError(t, f.service.RetryPending(context.Background()))
	assert.False(t, f.service.Snapshot().PendingCompletion)
}

func TestFocusAbandon(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCancelled, 300, ledgerNow).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(300 * time.Second)
	require.NoError(t, f.service.Abandon(context.Background()))

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateIdle, snap.State)
	assert.Empty(t, snap.SessionID)
	assert.Zero(t, snap.ElapsedSeconds)
	assert.Eventually(t, func() bool { return f.clock.ActiveTickers() == 0 }, time.Second, time.Millisecond)
}

func TestFocusAbandon_PausedExcludesPauseTime(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCancelled, 120, ledgerNow).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(2 * time.Minute)
	f.service.Pause()
	f.clock.Advance(time.Hour)

	require.NoError(t, f.service.Abandon(context.Background()))
}

func TestFocusAbandon_Idle(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	require.NoError(t, f.service.Abandon(context.Background()))
	assert.Equal(t, timer.StateIdle, f.engine.State())
}

func TestFocusAbandon_CancelFailure(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCancelled, 10, ledgerNow).
		Return(domain.NewStorageError("finish session", errors.New("readonly database")))

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)
	f.advance(10 * time.Second)

	err = f.service.Abandon(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
	assert.Equal(t, timer.StateIdle, f.engine.State())
}

func TestFocusStart_AfterCompletion(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)
	f.advance(1500 * time.Second)
	require.Equal(t, timer.StateCompleted, f.engine.State())

	_, err = f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateRunning, snap.State)
	assert.Zero(t, snap.ElapsedSeconds)
	assert.False(t, snap.HalfwayFired)
}

func TestFocusStart_RefusedWhileCompletionIsDelivered(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)
	f.numberSessions()

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil).Once()
	f.sound.EXPECT().PlayCue(domain.SoundBell).Return(nil).Once()

	// Halfway and completion fire in the same tick, as after a suspend.
	// The halfway cue is still playing when the user asks for a new run.
	var startErr error
	f.sound.EXPECT().PlayCue(domain.SoundMagic).Run(func(domain.SoundCue) {
		_, startErr = f.service.Start(context.Background(), StartFocusParams{})
	}).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	assert.ErrorIs(t, startErr, ErrFocusInProgress)
	assert.Equal(t, []FocusEventType{FocusEventHalfway, FocusEventCompleted}, drainEvents(f.service))

	snap := f.service.Snapshot()
	assert.Equal(t, timer.StateCompleted, snap.State)
	assert.Empty(t, snap.SessionID)
}

func TestFocusAbandon_WhileCompletionIsDeliveredStillCompletes(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 1500, ledgerNow).Return(nil).Once()
	f.sound.EXPECT().PlayCue(domain.SoundBell).Return(nil).Once()

	var abandonErr error
	f.sound.EXPECT().PlayCue(domain.SoundMagic).Run(func(domain.SoundCue) {
		abandonErr = f.service.Abandon(context.Background())
	}).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.advance(1500 * time.Second)

	require.NoError(t, abandonErr)
	assert.Equal(t, timer.StateIdle, f.engine.State())
	assert.Empty(t, f.service.Snapshot().SessionID)
}

func TestFocusCallbacks_IgnoreOtherSessions(t *testing.T) {
	f := newFocusFixture(t, domain.DefaultPreferences(), true)
	f.numberSessions()

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{})
	require.NoError(t, err)

	f.service.onHalfway("session-0")
	f.service.onComplete("session-0")

	snap := f.service.Snapshot()
	assert.Equal(t, "session-1", snap.SessionID)
	assert.Equal(t, timer.StateRunning, snap.State)
	assert.Empty(t, drainEvents(f.service))
}

func TestFocusRetryPending_KeepsEveryFailedCompletion(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)
	f.numberSessions()
	diskFull := errors.New("disk full")

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	// Once from the callback and once when the second Start drains the queue
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).Return(diskFull).Times(2)
	f.writer.EXPECT().Finish(mock.Anything, "session-2", domain.StatusCompleted, 60, ledgerNow).Return(diskFull).Once()

	for range 2 {
		_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
		require.NoError(t, err)
		f.advance(time.Minute)
	}

	snap := f.service.Snapshot()
	assert.True(t, snap.PendingCompletion)
	assert.Equal(t, 2, snap.PendingCount)

	var retried []string
	f.writer.EXPECT().Finish(mock.Anything, mock.Anything, domain.StatusCompleted, 60, ledgerNow).
		Run(func(_ context.Context, id string, _ domain.SessionStatus, _ int, _ time.Time) {
			retried = append(retried, id)
		}).Return(nil).Times(2)

	require.NoError(t, f.service.RetryPending(context.Background()))
	assert.Equal(t, []string{"session-1", "session-2"}, retried)
	assert.Zero(t, f.service.Snapshot().PendingCount)
}

func TestFocusStart_RetriesPendingFirst(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)
	f.numberSessions()

	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).
		Return(errors.New("database is locked")).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
	require.NoError(t, err)
	f.advance(time.Minute)
	require.True(t, f.service.Snapshot().PendingCompletion)

	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).Return(nil).Once()

	id, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})

	require.NoError(t, err)
	assert.Equal(t, "session-2", id)
	assert.False(t, f.service.Snapshot().PendingCompletion)
}

func TestFocusClose(t *testing.T) {
	t.Run("cancels the running session", func(t *testing.T) {
		f := newFocusFixture(t, domain.DefaultPreferences(), true)
		f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCancelled, 42, ledgerNow).Return(nil).Once()

		_, err := f.service.Start(context.Background(), StartFocusParams{})
		require.NoError(t, err)
		f.advance(42 * time.Second)

		require.NoError(t, f.service.Close(context.Background()))
		assert.Empty(t, f.service.Snapshot().SessionID)
	})

	t.Run("retries pending completions", func(t *testing.T) {
		prefs := domain.DefaultPreferences()
		prefs.MomMode = domain.MomModeGentle
		f := newFocusFixture(t, prefs, false)
		f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).
			Return(errors.New("disk full")).Once()

		_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
		require.NoError(t, err)
		f.advance(time.Minute)

		f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).Return(nil).Once()

		require.NoError(t, f.service.Close(context.Background()))
		assert.False(t, f.service.Snapshot().PendingCompletion)
	})

	t.Run("records a completion whose callback has not run", func(t *testing.T) {
		f := newFocusFixture(t, domain.DefaultPreferences(), true)
		f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).Return(nil).Once()

		// The halfway cue runs after the engine completed but before the
		// completion callback, so Close takes over the completion
		var closeErr error
		f.sound.EXPECT().PlayCue(domain.SoundMagic).Run(func(domain.SoundCue) {
			closeErr = f.service.Close(context.Background())
		}).Return(nil).Once()

		_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
		require.NoError(t, err)
		f.advance(time.Minute)

		require.NoError(t, closeErr)
		assert.Equal(t, []FocusEventType{FocusEventHalfway}, drainEvents(f.service))
		assert.Empty(t, f.service.Snapshot().SessionID)
	})
}

func TestFocusComplete_SnapshotNotBlockedByLedgerWrite(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.MomMode = domain.MomModeGentle
	f := newFocusFixture(t, prefs, false)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.writer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCompleted, 60, ledgerNow).
		Run(func(context.Context, string, domain.SessionStatus, int, time.Time) {
			close(entered)
			<-release
		}).Return(nil).Once()

	_, err := f.service.Start(context.Background(), StartFocusParams{DurationSeconds: 60})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.advance(time.Minute)
	}()
	<-entered

	snapshots := make(chan FocusSnapshot, 1)
	go func() { snapshots <- f.service.Snapshot() }()

	select {
	case snap := <-snapshots:
		assert.Equal(t, timer.StateCompleted, snap.State)
	case <-time.After(time.Second):
		t.Error("Snapshot blocked while the completion was being written")
	}

	close(release)
	<-done
}
