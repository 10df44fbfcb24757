// Package host runs the cursor effect in a terminal: a static page with the
// glyph overlay on top, driven by tcell mouse, focus and resize events.
package host

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/capability"
	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/engine"
	"github.com/lixenwraith/glyph-trail/fx"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/particle"
	"github.com/lixenwraith/glyph-trail/render"
	"github.com/lixenwraith/glyph-trail/status"
)

// MetricFrameRetries counts frame posts that found the event queue full
const MetricFrameRetries = "host.frame_retries"

// Host owns the screen event loop; every effect call happens on the Run goroutine
type Host struct {
	screen tcell.Screen
	cfg    Config

	gate   *capability.Gate
	sched  *Scheduler
	canvas *Canvas
	page   *Page
	fx     *fx.CursorFX

	reg   *status.Registry
	prefs MotionStore
	clock engine.TimeProvider

	mouse   bool
	hud     bool
	buttons tcell.ButtonMask
	lastCol int
	lastRow int
	cols    int
	rows    int
}

// New wires the effect to an initialized screen
func New(screen tcell.Screen, cfg Config, opts ...Option) *Host {
	h := &Host{
		screen:  screen,
		cfg:     cfg,
		page:    DefaultPage(),
		canvas:  NewCanvas(),
		hud:     cfg.HUD,
		lastCol: -1,
		lastRow: -1,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.reg == nil {
		h.reg = status.NewRegistry()
	}
	if h.clock == nil {
		h.clock = engine.NewMonotonicTimeProvider()
	}

	switch cfg.Pointer {
	case PointerFine:
		h.mouse = true
	case PointerCoarse:
		h.mouse = false
	default:
		h.mouse = screen.HasMouse()
	}

	h.gate = capability.NewGate(cfg.Motion, capability.Signals{
		ReducedMotion: cfg.SystemReducedMotion,
		CoarsePointer: !h.mouse,
	})
	h.sched = NewScheduler(screen, parameter.FrameInterval)
	h.fx = fx.New(cfg.FX, h.gate, h.sched, h.canvas.Factory(), h.reg)
	return h
}

// Effect exposes the cursor effect
func (h *Host) Effect() *fx.CursorFX {
	return h.fx
}

// Gate exposes the capability gate
func (h *Host) Gate() *capability.Gate {
	return h.gate
}

// Run processes events until quit is requested or ctx is done
func (h *Host) Run(ctx context.Context) error {
	h.start()
	defer h.stop()

	events := make(chan tcell.Event, parameter.EventChanSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			log.Printf("host: context done: %v", ctx.Err())
			return nil
		case ev := <-events:
			if !h.handle(ev) {
				log.Printf("host: quit requested")
				return nil
			}
		}
	}
}

func (h *Host) start() {
	if h.mouse {
		h.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	h.screen.EnableFocus()

	h.cols, h.rows = h.screen.Size()
	h.fx.Start(h.viewport())
	log.Printf("host: started %dx%d mounted=%v motion=%s mouse=%v",
		h.cols, h.rows, h.fx.Mounted(), h.gate.Mode(), h.mouse)
	h.draw()
}

func (h *Host) stop() {
	h.fx.Close()
	h.screen.DisableFocus()
	h.screen.DisableMouse()
	log.Printf("host: stopped")
}

// handle dispatches one event; returns false to quit
func (h *Host) handle(ev tcell.Event) bool {
	if h.sched.Dispatch(ev) {
		h.reg.Ints.Get(MetricFrameRetries).Store(h.sched.Retried())
		h.draw()
		return true
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		h.handleMouse(ev)

	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		h.screen.Sync()
		h.fx.Resize(h.viewport())
		h.draw()

	case *tcell.EventFocus:
		h.fx.SetVisible(ev.Focused)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'm', 'M':
		h.cycleMotion()
	case 'p', 'P':
		h.toggleMouse()
	case 'h', 'H':
		h.hud = !h.hud
	}
	h.draw()
	return true
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// handleMouse forwards cell changes as pointer moves and Button1 presses as clicks.
// Wheel input and button changes in place are not movement.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if buttons&wheelMask != 0 {
		return
	}

	col, row := ev.Position()
	moved := col != h.lastCol || row != h.lastRow
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !moved && !pressed {
		return
	}

	pe := particle.PointerEvent{
		X:  (float64(col) + 0.5) * parameter.CellWidth,
		Y:  (float64(row) + 0.5) * parameter.CellHeight,
		At: h.clock.Now(),
	}
	if pressed {
		h.fx.Click(pe)
	}
	if moved {
		h.lastCol, h.lastRow = col, row
		h.fx.PointerMove(pe)
	}
}

func (h *Host) cycleMotion() {
	mode := h.gate.Mode().Next()
	h.gate.SetMode(mode)
	h.reg.Strings.Get(fx.MetricMotion).Store(mode.String())
	log.Printf("host: motion=%s mounted=%v", mode, h.fx.Mounted())
	if h.prefs == nil {
		return
	}
	if err := h.prefs.SetMotionMode(mode); err != nil {
		log.Printf("host: persist motion mode: %v", err)
	}
}

func (h *Host) toggleMouse() {
	h.mouse = !h.mouse
	if h.mouse {
		h.screen.EnableMouse(tcell.MouseMotionEvents)
	} else {
		h.screen.DisableMouse()
		h.buttons = 0
		h.lastCol, h.lastRow = -1, -1
	}
	h.gate.SetCoarsePointer(!h.mouse)
	log.Printf("host: mouse=%v mounted=%v", h.mouse, h.fx.Mounted())
}

func (h *Host) viewport() render.Viewport {
	return render.Viewport{Cols: h.cols, Rows: h.rows, PixelRatio: h.cfg.PixelRatio}
}

// draw layers page, HUD, then the overlay so glyphs sit above everything
func (h *Host) draw() {
	h.page.Draw(h.screen, h.cols, h.rows)
	if h.hud {
		drawHUD(h.screen, h.reg, h.cols, h.rows)
	}
	h.canvas.Draw(h.screen, h.page.Background())
	h.screen.Show()
}
