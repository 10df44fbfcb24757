package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/host"
)

const crashChildEnv = "GLYPH_TRAIL_CRASH_CHILD"

const finiMarker = "screen fini called"

// finiRecorder reports Fini on stderr so the parent process can see it
type finiRecorder struct {
	tcell.Screen
}

func (r finiRecorder) Fini() {
	fmt.Fprintln(os.Stderr, finiMarker)
	r.Screen.Fini()
}

type panicClock struct{}

func (panicClock) Now() time.Time {
	panic("clock exploded")
}

func runCrashingHost() {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(2)
	}
	screen.SetSize(80, 24)
	screen.InjectMouse(10, 5, tcell.ButtonNone, tcell.ModNone)

	cfg := host.DefaultConfig()
	cfg.Pointer = host.PointerFine
	err := runHost(context.Background(), finiRecorder{Screen: screen}, cfg, host.WithClock(panicClock{}))
	fmt.Fprintf(os.Stderr, "runHost returned: %v\n", err)
	os.Exit(3)
}

func TestRunHostCrashRestoresScreen(t *testing.T) {
	if os.Getenv(crashChildEnv) == "1" {
		runCrashingHost()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestRunHostCrashRestoresScreen$")
	cmd.Env = append(os.Environ(), crashChildEnv+"=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected child to exit with error, got %v\n%s", err, out)
	}
	if code := exitErr.ExitCode(); code != 1 {
		t.Fatalf("Expected exit code 1 from crash handler, got %d\n%s", code, out)
	}
	if !strings.Contains(string(out), "CRASH DETECTED") {
		t.Errorf("Expected crash report in output, got:\n%s", out)
	}
	if !strings.Contains(string(out), finiMarker) {
		t.Errorf("Expected screen Fini before exit, got:\n%s", out)
	}
}
