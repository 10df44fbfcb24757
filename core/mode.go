package core

import "fmt"

// MotionMode is the user override for animation: follow the system, force reduced, or force full motion
type MotionMode uint8

const (
	MotionAuto MotionMode = iota
	MotionReduced
	MotionFull
)

// String returns the persisted name of the mode
func (m MotionMode) String() string {
	switch m {
	case MotionReduced:
		return "reduced"
	case MotionFull:
		return "full"
	default:
		return "auto"
	}
}

// Next cycles auto -> reduced -> full -> auto
func (m MotionMode) Next() MotionMode {
	switch m {
	case MotionAuto:
		return MotionReduced
	case MotionReduced:
		return MotionFull
	default:
		return MotionAuto
	}
}

// ParseMotionMode maps a persisted name back to a mode
func ParseMotionMode(s string) (MotionMode, error) {
	switch s {
	case "auto", "":
		return MotionAuto, nil
	case "reduced":
		return MotionReduced, nil
	case "full":
		return MotionFull, nil
	}
	return MotionAuto, fmt.Errorf("unknown motion mode %q", s)
}
