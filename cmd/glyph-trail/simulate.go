package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/glyph-trail/capability"
	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/engine"
	"github.com/lixenwraith/glyph-trail/fx"
	"github.com/lixenwraith/glyph-trail/host"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/particle"
	"github.com/lixenwraith/glyph-trail/render"
	"github.com/lixenwraith/glyph-trail/status"
)

// Headless viewport for simulate
const (
	simCols = 80
	simRows = 24
	// simClickEvery is the frame period between synthetic clicks
	simClickEvery = 30
)

func newSimulateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run the effect headless along a synthetic pointer path and print metrics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			res := simulate(s)
			printSimulation(cmd.OutOrStdout(), s, res)
			return nil
		},
	}
}

type simulation struct {
	reg   *status.Registry
	peak  int
	cells int
}

// simulate drives the effect on a manual scheduler; the pointer traces a Lissajous
// curve and moves every frame, so the emitter throttle is exercised too
func simulate(s settings) simulation {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	sched := engine.NewManualScheduler(parameter.FrameInterval, start)
	clock := sched.Clock()
	buf := render.NewBuffer(0, 0)
	reg := status.NewRegistry()

	gate := capability.NewGate(core.MotionAuto, capability.Signals{
		ReducedMotion: s.ReduceMotion,
		CoarsePointer: s.Pointer == host.PointerCoarse,
	})
	effect := fx.New(s.fxConfig(), gate, sched, func() (render.Canvas, error) { return buf, nil }, reg)

	vp := render.Viewport{Cols: simCols, Rows: simRows, PixelRatio: s.PixelRatio}
	effect.Start(vp)

	res := simulation{reg: reg}
	w, h := vp.Width(), vp.Height()
	for i := 0; i < s.Frames; i++ {
		t := float64(i) / float64(max(s.Frames, 1))
		ev := particle.PointerEvent{
			X:  w/2 + w*0.4*math.Sin(2*math.Pi*3*t),
			Y:  h/2 + h*0.4*math.Sin(2*math.Pi*2*t),
			At: clock.Now(),
		}
		effect.PointerMove(ev)
		if i%simClickEvery == 0 {
			effect.Click(ev)
		}
		sched.Step()

		res.peak = max(res.peak, effect.Len())
		res.cells = max(res.cells, buf.Count())
	}
	effect.Close()
	return res
}

func printSimulation(out io.Writer, s settings, res simulation) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Fprintf(out, "simulated %d frames at %v\n", s.Frames, parameter.FrameInterval)
	_, _ = faint.Fprintf(out, "viewport %dx%d cells, pointer %s, reduce motion %v\n\n",
		simCols, simRows, s.Pointer, s.ReduceMotion)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("metric"), bold.Sprint("value"))
	for _, e := range res.reg.Snapshot() {
		tbl.AddRow(e.Key, e.Value)
	}
	tbl.AddRow("peak particles", fmt.Sprint(res.peak))
	tbl.AddRow("peak cells", fmt.Sprint(res.cells))
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(out, tbl)
}
