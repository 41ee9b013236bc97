// Package timer implements the countdown engine behind a focus session.
//
// Elapsed time is always computed from wall-clock deltas: the engine keeps
// the time accumulated in finished running segments plus the start of the
// current segment, and periodic ticks only trigger a recomputation. Late or
// skipped ticks therefore never make the countdown drift.
package timer

import (
	"sync"
	"time"
)

// State is the lifecycle state of the engine
type State string

const (
	StateCompleted State = "completed"
	StateIdle      State = "idle"
	StatePaused    State = "paused"
	StateRunning   State = "running"
)

// DefaultTickInterval is how often a running engine re-evaluates elapsed time
const DefaultTickInterval = time.Second

// Callbacks are invoked by the engine on one-shot milestones. Either may be nil.
type Callbacks struct {
	OnComplete func()
	OnHalfway  func()
}

// Config configures a countdown run
type Config struct {
	Callbacks       Callbacks
	Clock           Clock
	DurationSeconds int
	TickInterval    time.Duration
}

// Snapshot is a consistent view of the engine's derived values
type Snapshot struct {
	DurationSeconds  int
	ElapsedSeconds   int
	HalfwayFired     bool
	Progress         float64
	RemainingSeconds int
	State            State
}

// Engine is a pausable countdown with halfway and completion callbacks.
//
// Start, Pause, Resume and Reset never block on the tick loop. Callbacks run
// after the engine lock is released, on the tick goroutine (or on the caller's
// goroutine when Start completes a non-positive duration immediately), so they
// may call any engine method. A panicking callback is not recovered.
type Engine struct {
	mu sync.Mutex

	clock        Clock
	config       Config
	tickInterval time.Duration

	accumulated  time.Duration
	callbacks    Callbacks
	duration     int
	halfwayFired bool
	segmentStart time.Time
	state        State
	stopCh       chan struct{}
}

// New creates an idle engine
func New(config Config) *Engine {
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}

	return &Engine{
		callbacks:    config.Callbacks,
		clock:        config.Clock,
		config:       config,
		duration:     config.DurationSeconds,
		state:        StateIdle,
		tickInterval: config.TickInterval,
	}
}

// Configure replaces the duration and callbacks used by the next Start.
// The current run, if any, keeps the values it was started with.
func (e *Engine) Configure(durationSeconds int, callbacks Callbacks) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.config.DurationSeconds = durationSeconds
	e.config.Callbacks = callbacks
	if e.state == StateIdle {
		e.duration = durationSeconds
		e.callbacks = callbacks
	}
}

// Start begins a new run from zero. Calling Start in any state discards the
// previous run first.
//
// A non-positive duration does not fail: the run completes on this first
// evaluation with zero progress and only the completion callback fires.
func (e *Engine) Start() {
	e.mu.Lock()
	e.stopTickingLocked()

	e.duration = e.config.DurationSeconds
	e.callbacks = e.config.Callbacks
	e.accumulated = 0
	e.halfwayFired = false
	e.segmentStart = e.clock.Now()
	e.state = StateRunning

	fire := e.evaluateLocked(e.segmentStart)
	if e.state == StateRunning {
		e.startTickingLocked()
	}
	e.mu.Unlock()

	runCallbacks(fire)
}

// Pause freezes a running countdown. It is a no-op in any other state.
// If the deadline has already passed the run completes instead.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}

	now := e.clock.Now()
	fire := e.evaluateLocked(now)
	if e.state == StateRunning {
		e.accumulated += now.Sub(e.segmentStart)
		e.segmentStart = time.Time{}
		e.state = StatePaused
		e.stopTickingLocked()
	}
	e.mu.Unlock()

	runCallbacks(fire)
}

// Resume continues a paused countdown. It is a no-op in any other state.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StatePaused {
		return
	}
	e.segmentStart = e.clock.Now()
	e.state = StateRunning
	e.startTickingLocked()
}

// Reset stops ticking and returns to idle from any state
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTickingLocked()
	e.accumulated = 0
	e.halfwayFired = false
	e.segmentStart = time.Time{}
	e.state = StateIdle
	e.duration = e.config.DurationSeconds
	e.callbacks = e.config.Callbacks
}

// Tick re-evaluates elapsed time against the clock and fires any milestone
// that has been reached. The tick loop calls it on every interval; hosts may
// call it to refresh immediately. It does nothing unless the engine is running.
func (e *Engine) Tick() {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	fire := e.evaluateLocked(e.clock.Now())
	e.mu.Unlock()

	runCallbacks(fire)
}

// State returns the current lifecycle state
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ElapsedSeconds returns whole seconds elapsed, capped at the duration
func (e *Engine) ElapsedSeconds() int {
	return e.Snapshot().ElapsedSeconds
}

// RemainingSeconds returns the seconds left, never negative
func (e *Engine) RemainingSeconds() int {
	return e.Snapshot().RemainingSeconds
}

// Progress returns the completed fraction in [0, 1]
func (e *Engine) Progress() float64 {
	return e.Snapshot().Progress
}

// Snapshot returns all derived values computed at a single instant
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	elapsed := e.elapsedSecondsLocked(e.clock.Now())
	return Snapshot{
		DurationSeconds:  e.duration,
		ElapsedSeconds:   elapsed,
		HalfwayFired:     e.halfwayFired,
		Progress:         progress(elapsed, e.duration),
		RemainingSeconds: max(e.duration-elapsed, 0),
		State:            e.state,
	}
}

// evaluateLocked applies the milestone rules for the instant now and returns
// the callbacks to run once the lock is released, halfway first.
func (e *Engine) evaluateLocked(now time.Time) []func() {
	if e.state != StateRunning {
		return nil
	}

	var fire []func()

	if e.duration <= 0 {
		e.completeLocked(0)
		return append(fire, e.callbacks.OnComplete)
	}

	total := e.accumulated + now.Sub(e.segmentStart)
	target := time.Duration(e.duration) * time.Second

	if !e.halfwayFired && total >= target/2 {
		e.halfwayFired = true
		fire = append(fire, e.callbacks.OnHalfway)
	}

	if total >= target {
		e.completeLocked(target)
		fire = append(fire, e.callbacks.OnComplete)
	}

	return fire
}

func (e *Engine) completeLocked(accumulated time.Duration) {
	e.stopTickingLocked()
	e.accumulated = accumulated
	e.segmentStart = time.Time{}
	e.state = StateCompleted
}

func (e *Engine) elapsedSecondsLocked(now time.Time) int {
	total := e.accumulated
	if e.state == StateRunning {
		total += now.Sub(e.segmentStart)
	}

	seconds := int(total / time.Second)
	seconds = min(seconds, e.duration)
	return max(seconds, 0)
}

func (e *Engine) startTickingLocked() {
	stopCh := make(chan struct{})
	e.stopCh = stopCh
	go e.run(e.clock.NewTicker(e.tickInterval), stopCh)
}

func (e *Engine) stopTickingLocked() {
	if e.stopCh != nil {
		close(e.stopCh)
		e.stopCh = nil
	}
}

func (e *Engine) run(ticker Ticker, stopCh <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			e.Tick()
		}
	}
}

func progress(elapsed, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(duration)
	return min(max(p, 0), 1)
}

func runCallbacks(fns []func()) {
	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}
