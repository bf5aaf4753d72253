// Package ai drives the right-hand paddle by predicting where the ball will arrive.
//
// The controller lags: it only re-predicts every Profile.UpdateInterval
// frames and chases the stale target in between, so slower profiles react later.
package ai

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Controller holds the recalculation timer and the active profile
type Controller struct {
	Profile parameter.Profile
	Timer   int // Frames since last prediction, in [0, Profile.UpdateInterval]
}

// NewController returns a controller with a fresh timer
func NewController(p parameter.Profile) Controller {
	return Controller{Profile: p}
}

// SetProfile swaps the preset and keeps the timer inside the new interval
func (c *Controller) SetProfile(p parameter.Profile) {
	c.Profile = p
	c.Timer = vmath.Clamp(c.Timer, 0, p.UpdateInterval)
}

// Reset restarts the recalculation countdown
func (c *Controller) Reset() {
	c.Timer = 0
}

// Prime forces a prediction on the next Update
func (c *Controller) Prime() {
	c.Timer = c.Profile.UpdateInterval
}

// Update runs one frame for paddle p, returns true if a new target was computed
func (c *Controller) Update(p *core.Paddle, b core.Ball, g parameter.Geometry, rng *vmath.Rand) bool {
	recalculated := false

	c.Timer++
	if c.Timer >= c.Profile.UpdateInterval {
		c.Timer = 0
		p.TargetY = c.Target(b, g, rng)
		recalculated = true
	}

	Move(p, c.Profile.MaxSpeed, g)
	return recalculated
}

// Target picks where the paddle should head: the predicted arrival height while the
// ball approaches, the vertical centre while it moves away
func (c *Controller) Target(b core.Ball, g parameter.Geometry, rng *vmath.Rand) int {
	if b.VX <= 0 {
		return g.CenterY()
	}
	return Predict(b, g, c.Profile.ErrorMargin, rng)
}

// Predict estimates the ball's centre height when it reaches the AI paddle face,
// jittered by up to errorMargin pixels and clamped to the paddle's travel range
func Predict(b core.Ball, g parameter.Geometry, errorMargin int, rng *vmath.Rand) int {
	paddleX := vmath.FromInt(g.AIPaddleX())

	// vx>>4 can be zero or negative for slow balls; the divisor never drops below 1
	divisor := max(b.VX>>4, 1)

	// Arrival estimate in 1/16 frame units, paired with the /16 below
	arrival := vmath.Clamp((paddleX-b.X)/divisor, 0, parameter.AIPredictionHorizon)

	predicted := vmath.ToInt(b.Y + b.VY*arrival/16)
	predicted += rng.Spread(errorMargin)

	return vmath.Clamp(predicted, g.PaddleMinY(), g.PaddleMaxY())
}

// Move steps p toward its target by at most maxSpeed pixels
// Targets inside the dead zone are treated as reached
func Move(p *core.Paddle, maxSpeed int, g parameter.Geometry) {
	delta := p.TargetY - p.Y
	if vmath.Abs(delta) <= parameter.AIDeadZone {
		return
	}

	switch {
	case delta > maxSpeed:
		p.Y += maxSpeed
	case delta < -maxSpeed:
		p.Y -= maxSpeed
	default:
		p.Y = p.TargetY
	}

	p.Y = vmath.Clamp(p.Y, g.PaddleMinY(), g.PaddleMaxY())
}
