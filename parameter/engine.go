package parameter

import "time"

// Frame Loop Timing
const (
	// FrameInterval is the scheduling interval between frames (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// FrameDelta is the fixed simulation step applied per frame, independent of measured wall-clock time
	FrameDelta = 16 * time.Millisecond
)

// Event Loop
const (
	// EventChanSize buffers frame events posted from timer goroutines
	EventChanSize = 64
)
