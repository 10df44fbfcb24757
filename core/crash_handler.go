package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var crashScreen atomic.Pointer[Finisher]

// RegisterCrashScreen sets the screen restored by HandleCrash, nil clears it
func RegisterCrashScreen(s Finisher) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Load(); s != nil {
		(*s).Fini()
	} else {
		// No screen to finish, undo what Init may have switched on
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// emergencyResetSeq turns off mouse and focus reporting, shows the cursor,
// leaves the alternate screen and resets attributes
const emergencyResetSeq = "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" +
	"\x1b[?1004l" +
	"\x1b[?25h" +
	"\x1b[?1049l" +
	"\x1b[0m" +
	"\x1b[?7h"

// EmergencyReset writes the terminal restore sequence to w without a screen
func EmergencyReset(w io.Writer) {
	io.WriteString(w, emergencyResetSeq)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
