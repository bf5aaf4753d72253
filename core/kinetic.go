package core

import "github.com/lixenwraith/vi-pong/vmath"

// Ball is the single moving body; all fields are Q8.8
type Ball struct {
	// X and Y are the sub-pixel centre coordinates
	X, Y vmath.Fixed
	// VX and VY are pixels per frame
	VX, VY vmath.Fixed
}

// Pixel returns the integer centre
func (b Ball) Pixel() (x, y int) {
	return vmath.ToInt(b.X), vmath.ToInt(b.Y)
}
