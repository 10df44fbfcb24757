package host

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/engine"
)

// frameEvent carries a due frame request into the screen event queue
type frameEvent struct {
	tcell.EventTime
	token *frameToken
}

type frameToken struct {
	fn    func()
	timer *time.Timer
	done  atomic.Bool
}

// Cancel stops the timer and marks the request dead should its event already be queued
func (t *frameToken) Cancel() {
	if t.done.Swap(true) {
		return
	}
	t.timer.Stop()
}

// Scheduler implements engine.Scheduler on the tcell event queue.
// Timers only post events; callbacks run on the goroutine that calls Dispatch.
type Scheduler struct {
	screen   tcell.Screen
	interval time.Duration

	posted  atomic.Int64
	retried atomic.Int64
}

// NewScheduler creates a scheduler firing interval after each request
func NewScheduler(screen tcell.Screen, interval time.Duration) *Scheduler {
	return &Scheduler{screen: screen, interval: interval}
}

// RequestFrame implements engine.Scheduler
func (s *Scheduler) RequestFrame(fn func()) engine.Token {
	t := &frameToken{fn: fn}
	var fire func()
	fire = func() {
		if t.done.Load() {
			return
		}
		ev := &frameEvent{token: t}
		ev.SetEventNow()
		if err := s.screen.PostEvent(ev); err != nil {
			// queue full, try again next interval
			s.retried.Add(1)
			time.AfterFunc(s.interval, fire)
			return
		}
		s.posted.Add(1)
	}
	t.timer = time.AfterFunc(s.interval, fire)
	return t
}

// Dispatch runs the frame carried by ev; false when ev is not a frame event
func (s *Scheduler) Dispatch(ev tcell.Event) bool {
	fe, ok := ev.(*frameEvent)
	if !ok {
		return false
	}
	if fe.token.done.Swap(true) {
		return true
	}
	fe.token.fn()
	return true
}

// Posted returns the number of frame events delivered to the queue
func (s *Scheduler) Posted() int64 {
	return s.posted.Load()
}

// Retried returns the number of posts rejected by a full queue and rescheduled
func (s *Scheduler) Retried() int64 {
	return s.retried.Load()
}
