package engine

// State is the render loop lifecycle state
type State uint8

const (
	// StateIdle has no frame request pending
	StateIdle State = iota
	// StateRunning always has exactly one frame request pending outside of a tick
	StateRunning
	// StateStopped is terminal, nothing is ever scheduled again
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "stopped"
	}
}

// Token cancels one frame request; cancelling a fired or cancelled token is a no-op
type Token interface {
	Cancel()
}

// Scheduler requests a single callback at the next display frame
type Scheduler interface {
	RequestFrame(fn func()) Token
}

// Loop is the self-rescheduling frame loop.
// All methods must be called from the goroutine that runs frame callbacks.
type Loop struct {
	sched   Scheduler
	frame   func()
	state   State
	pending Token
	frames  uint64
}

// NewLoop creates an idle loop; frame runs once per scheduled tick
func NewLoop(s Scheduler, frame func()) *Loop {
	return &Loop{
		sched: s,
		frame: frame,
		state: StateIdle,
	}
}

// Start moves Idle -> Running and schedules the first frame
func (l *Loop) Start() {
	if l.state != StateIdle {
		return
	}
	l.state = StateRunning
	l.schedule()
}

// SetVisible suspends the loop when hidden and resumes it when visible
func (l *Loop) SetVisible(visible bool) {
	switch {
	case !visible && l.state == StateRunning:
		l.state = StateIdle
		l.cancel()
	case visible && l.state == StateIdle:
		l.state = StateRunning
		l.schedule()
	}
}

// Stop cancels any pending frame and makes the loop terminal
func (l *Loop) Stop() {
	if l.state == StateStopped {
		return
	}
	l.state = StateStopped
	l.cancel()
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Pending reports whether a frame request is outstanding
func (l *Loop) Pending() bool {
	return l.pending != nil
}

// Frames returns the number of frame callbacks executed
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) schedule() {
	if l.pending != nil {
		return
	}
	l.pending = l.sched.RequestFrame(l.tick)
}

func (l *Loop) cancel() {
	if l.pending == nil {
		return
	}
	l.pending.Cancel()
	l.pending = nil
}

func (l *Loop) tick() {
	l.pending = nil
	l.frames++
	l.frame()
	// frame may have hidden or stopped the loop
	if l.state == StateRunning {
		l.schedule()
	}
}
