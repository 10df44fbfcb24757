package core

// Kinetic is the float position/velocity pair shared by overlay effects
type Kinetic struct {
	// X and Y are viewport pixel coordinates
	X, Y float64
	// VX and VY are velocity in pixels per millisecond
	VX, VY float64
}

// Advance moves the position by velocity over dtMs milliseconds
func (k *Kinetic) Advance(dtMs float64) {
	k.X += k.VX * dtMs
	k.Y += k.VY * dtMs
}
