package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
	"github.com/renato0307/mama/internal/timer"
)

// ErrFocusInProgress is returned when starting while a session is active
var ErrFocusInProgress = errors.New("a focus session is already in progress")

// callbackTimeout bounds ledger writes made from engine callbacks
const callbackTimeout = 5 * time.Second

// FocusEventType identifies what happened to the active focus session
type FocusEventType string

const (
	FocusEventCompleted        FocusEventType = "completed"
	FocusEventCompletionFailed FocusEventType = "completion_failed"
	FocusEventHalfway          FocusEventType = "halfway"
)

// FocusEvent is published when an engine milestone has been handled
type FocusEvent struct {
	Err       error
	SessionID string
	Type      FocusEventType
}

// FocusSnapshot combines the engine state with the ledger session it drives
type FocusSnapshot struct {
	timer.Snapshot
	PendingCompletion bool
	PendingCount      int
	SessionID         string
	TaskID            *string
}

// StartFocusParams contains parameters for starting a focus session
type StartFocusParams struct {
	// DurationSeconds overrides the work duration preference when positive
	DurationSeconds int
	TaskID          *string
}

// pendingCompletion is a completion the ledger has not accepted yet
type pendingCompletion struct {
	duration  int
	sessionID string
	taskID    *string
}

// FocusService runs one focus session at a time: it records the session in
// the ledger, drives the countdown engine and reacts to its milestones.
//
// sessionID stays set from Start until the run's completion has been
// handed to the ledger or the run is abandoned. Ledger I/O never happens
// while mu is held.
type FocusService struct {
	engine       *timer.Engine
	events       chan FocusEvent
	ledger       *SessionLedger
	preferences  *PreferencesService
	soundEnabled bool
	soundPlayer  ports.SoundPlayer
	tasks        ports.TaskWriter

	mu          sync.Mutex
	completeCue domain.SoundCue
	duration    int
	halfwayCue  domain.SoundCue
	pending     []pendingCompletion
	sessionID   string
	taskID      *string
}

// NewFocusService creates a new FocusService around an idle engine
func NewFocusService(
	engine *timer.Engine,
	ledger *SessionLedger,
	preferences *PreferencesService,
	tasks ports.TaskWriter,
	soundPlayer ports.SoundPlayer,
	soundEnabled bool,
) *FocusService {
	return &FocusService{
		engine:       engine,
		events:       make(chan FocusEvent, 8),
		ledger:       ledger,
		preferences:  preferences,
		soundEnabled: soundEnabled,
		soundPlayer:  soundPlayer,
		tasks:        tasks,
	}
}

// Events delivers milestone notifications. Events are dropped when nobody
// keeps up with the channel.
func (s *FocusService) Events() <-chan FocusEvent {
	return s.events
}

// Start records a new RUNNING session and starts the countdown. If the
// ledger write fails the engine is left untouched.
//
// Completions still waiting for the ledger are retried first. Start is
// refused while the previous run is active or its completion is still
// being recorded.
func (s *FocusService) Start(ctx context.Context, params StartFocusParams) (string, error) {
	if err := s.RetryPending(ctx); err != nil {
		logging.Logger.Warn("Pending completions still not recorded", "error", err)
	}

	if s.busy() {
		return "", ErrFocusInProgress
	}

	prefs, err := s.preferences.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load preferences: %w", err)
	}

	duration := prefs.WorkDuration
	if params.DurationSeconds > 0 {
		duration = params.DurationSeconds
	}

	id, err := s.ledger.CreateSession(ctx, params.TaskID, duration)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if s.sessionID != "" {
		// Another Start won the race while the session was being created
		s.mu.Unlock()
		s.cancelUnused(id)
		return "", ErrFocusInProgress
	}
	s.completeCue = domain.CueForAlarm(prefs.AlarmSound)
	s.duration = duration
	s.halfwayCue = domain.HalfwayCue(prefs.MomMode)
	s.sessionID = id
	s.taskID = params.TaskID
	s.engine.Configure(duration, timer.Callbacks{
		OnComplete: func() { s.onComplete(id) },
		OnHalfway:  func() { s.onHalfway(id) },
	})
	s.mu.Unlock()

	s.engine.Start()

	logging.Logger.Info("Focus session started", "session_id", id, "duration", duration)
	return id, nil
}

// Pause freezes the countdown
func (s *FocusService) Pause() {
	s.engine.Pause()
}

// Resume continues a paused countdown
func (s *FocusService) Resume() {
	s.engine.Resume()
}

// Refresh re-evaluates the countdown immediately
func (s *FocusService) Refresh() {
	s.engine.Tick()
}

// Abandon stops the countdown and cancels the active session with the time
// focused so far. A countdown that already completed is only reset; its
// completion is still recorded.
func (s *FocusService) Abandon(ctx context.Context) error {
	s.mu.Lock()

	snap := s.engine.Snapshot()
	id := s.sessionID
	s.engine.Reset()

	if id == "" || snap.State == timer.StateCompleted {
		s.mu.Unlock()
		return nil
	}

	s.sessionID = ""
	s.taskID = nil
	s.mu.Unlock()

	if err := s.ledger.CancelSession(ctx, id, snap.ElapsedSeconds); err != nil {
		if errors.Is(err, domain.ErrSessionEnded) {
			logging.Logger.Warn("Session ended before it could be cancelled", "session_id", id)
			return nil
		}
		return err
	}

	logging.Logger.Info("Focus session abandoned", "session_id", id, "elapsed", snap.ElapsedSeconds)
	return nil
}

// RetryPending re-attempts every completion the ledger rejected earlier.
// Completions that fail again stay queued.
func (s *FocusService) RetryPending(ctx context.Context) error {
	s.mu.Lock()
	queue := s.pending
	s.pending = nil
	s.mu.Unlock()

	var failed []pendingCompletion
	var errs []error
	for _, p := range queue {
		if err := s.record(ctx, p); err != nil {
			failed = append(failed, p)
			errs = append(errs, err)
		}
	}

	if len(failed) > 0 {
		s.mu.Lock()
		s.pending = append(failed, s.pending...)
		s.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Close abandons an active countdown and makes a last attempt at every
// completion not yet recorded, including one whose callback has not run.
func (s *FocusService) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.sessionID != "" && s.engine.State() == timer.StateCompleted {
		s.pending = append(s.pending, s.takeCompletionLocked())
	}
	s.mu.Unlock()

	return errors.Join(s.Abandon(ctx), s.RetryPending(ctx))
}

// Snapshot returns the current countdown and session state
func (s *FocusService) Snapshot() FocusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FocusSnapshot{
		Snapshot:          s.engine.Snapshot(),
		PendingCompletion: len(s.pending) > 0,
		PendingCount:      len(s.pending),
		SessionID:         s.sessionID,
		TaskID:            s.taskID,
	}
}

func (s *FocusService) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID != ""
}

func (s *FocusService) onHalfway(id string) {
	s.mu.Lock()
	current := s.sessionID == id
	cue := s.halfwayCue
	s.mu.Unlock()

	if !current {
		logging.Logger.Debug("Ignoring halfway of a finished session", "session_id", id)
		return
	}

	logging.Logger.Info("Focus session halfway", "session_id", id)
	s.play(cue)
	s.publish(FocusEvent{SessionID: id, Type: FocusEventHalfway})
}

// onComplete records the completion of run id. The countdown always
// completes at the configured duration, so that is the duration written to
// the ledger.
func (s *FocusService) onComplete(id string) {
	s.mu.Lock()
	if s.sessionID != id {
		s.mu.Unlock()
		logging.Logger.Debug("Ignoring completion of a finished session", "session_id", id)
		return
	}
	cue := s.completeCue
	p := s.takeCompletionLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	if err := s.record(ctx, p); err != nil {
		s.mu.Lock()
		s.pending = append(s.pending, p)
		s.mu.Unlock()

		logging.Logger.Error("Failed to record completed session, keeping it pending",
			"session_id", id,
			"error", err)
		s.publish(FocusEvent{Err: err, SessionID: id, Type: FocusEventCompletionFailed})
		return
	}

	logging.Logger.Info("Focus session completed", "session_id", id)
	s.play(cue)
	s.publish(FocusEvent{SessionID: id, Type: FocusEventCompleted})
}

// takeCompletionLocked detaches the active session as a completion to record
func (s *FocusService) takeCompletionLocked() pendingCompletion {
	p := pendingCompletion{duration: s.duration, sessionID: s.sessionID, taskID: s.taskID}
	s.sessionID = ""
	s.taskID = nil
	return p
}

// record writes a completion and credits its task. A session that already
// ended elsewhere counts as recorded.
func (s *FocusService) record(ctx context.Context, p pendingCompletion) error {
	if err := s.ledger.CompleteSession(ctx, p.sessionID, p.duration); err != nil {
		if errors.Is(err, domain.ErrSessionEnded) {
			logging.Logger.Warn("Session was already ended elsewhere", "session_id", p.sessionID)
			return nil
		}
		return err
	}

	if p.taskID != nil {
		if err := s.tasks.IncrementPomodoro(ctx, *p.taskID); err != nil {
			logging.Logger.Error("Failed to credit pomodoro to task", "task_id", *p.taskID, "error", err)
		}
	}
	return nil
}

// cancelUnused cancels a session created by a Start that lost a race
func (s *FocusService) cancelUnused(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	if err := s.ledger.CancelSession(ctx, id, 0); err != nil {
		logging.Logger.Error("Failed to cancel unused session", "session_id", id, "error", err)
	}
}

func (s *FocusService) play(cue domain.SoundCue) {
	if !s.soundEnabled || cue == domain.SoundNone {
		return
	}
	if err := s.soundPlayer.PlayCue(cue); err != nil {
		logging.Logger.Warn("Failed to play sound", "cue", cue, "error", err)
	}
}

func (s *FocusService) publish(event FocusEvent) {
	select {
	case s.events <- event:
	default:
		logging.Logger.Debug("Dropping focus event", "type", event.Type)
	}
}
