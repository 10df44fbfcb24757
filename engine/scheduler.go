package engine

import "time"

// ManualScheduler queues frame requests until Step fires them.
// Drives the loop headless and in tests; advances its clock by Interval per step.
type ManualScheduler struct {
	Interval time.Duration

	clock    *VirtualClock
	queue    []*manualToken
	requests int
}

type manualToken struct {
	fn        func()
	cancelled bool
}

func (t *manualToken) Cancel() {
	t.cancelled = true
}

// NewManualScheduler creates a scheduler with a virtual clock starting at start
func NewManualScheduler(interval time.Duration, start time.Time) *ManualScheduler {
	return &ManualScheduler{
		Interval: interval,
		clock:    NewVirtualClock(start),
	}
}

// RequestFrame implements Scheduler
func (s *ManualScheduler) RequestFrame(fn func()) Token {
	t := &manualToken{fn: fn}
	s.queue = append(s.queue, t)
	s.requests++
	return t
}

// Step advances the clock one interval and fires the requests queued before the call.
// Returns the number of callbacks run.
func (s *ManualScheduler) Step() int {
	s.clock.Advance(s.Interval)
	batch := s.queue
	s.queue = nil
	ran := 0
	for _, t := range batch {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of live requests
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Requests returns the total number of frames ever requested
func (s *ManualScheduler) Requests() int {
	return s.requests
}

// Clock exposes the virtual time advanced by Step
func (s *ManualScheduler) Clock() *VirtualClock {
	return s.clock
}
