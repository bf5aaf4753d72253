package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-pong/vmath"
)

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbField       = tcell.NewRGBColor(200, 200, 200) // Paddles and centre line
	RgbCenterLine  = tcell.NewRGBColor(90, 90, 110)   // Dimmed net
	RgbScore       = tcell.NewRGBColor(255, 255, 255) // Score digits
	RgbTitle       = tcell.NewRGBColor(255, 165, 0)   // Orange banner
	RgbHint        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSelected    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbWin         = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbLose        = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbEntryCursor = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
)

// Ball ramp endpoints: serve speed is cool, max speed is hot
var (
	ballCool = colorful.Color{R: 140.0 / 255, G: 220.0 / 255, B: 1}
	ballHot  = colorful.Color{R: 1, G: 80.0 / 255, B: 40.0 / 255}
)

// BallProgress maps |vx| onto [0,1] between the serve speed and the cap
func BallProgress(vx, initial, limit vmath.Fixed) float64 {
	span := limit - initial
	if span <= 0 {
		return 0
	}
	p := float64(vmath.Abs(vx)-initial) / float64(span)
	return vmath.Clamp(p, 0.0, 1.0)
}

// GetBallColor blends the ball colour in Lab space by speed progress
func GetBallColor(progress float64) tcell.Color {
	progress = vmath.Clamp(progress, 0.0, 1.0)
	c := ballCool.BlendLab(ballHot, progress).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
