package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Integrate performs one Euler step: p = p + v
func Integrate(b *core.Ball) {
	b.X += b.VX
	b.Y += b.VY
}

// BounceWalls reflects the ball off the score band and the floor, returns true if reflection occurred
// The ball is clamped to the boundary and VY negated with no energy loss
func BounceWalls(b *core.Ball, g parameter.Geometry) bool {
	y := vmath.ToInt(b.Y)
	half := g.BallSize / 2

	if y-half <= g.ScoreBand {
		b.Y = vmath.FromInt(g.ScoreBand + half)
		b.VY = -b.VY
		return true
	}
	if y+half >= g.Height {
		b.Y = vmath.FromInt(g.Height - half)
		b.VY = -b.VY
		return true
	}
	return false
}

// ClampVelocityY bounds vertical speed regardless of accumulated spin
func ClampVelocityY(b *core.Ball) {
	b.VY = vmath.Clamp(b.VY, -parameter.VelocityYMax, parameter.VelocityYMax)
}

// ClampSafetyY hard-bounds the ball to a margin outside the field
// Not part of normal play: walls keep the ball inside long before this triggers
func ClampSafetyY(b *core.Ball, g parameter.Geometry) {
	b.Y = vmath.Clamp(b.Y,
		vmath.FromInt(-parameter.SafetyMargin),
		vmath.FromInt(g.Height+parameter.SafetyMargin))
}

// Serve centres the ball and launches it toward receiver at speed
// angle is in [-Scale, Scale) and becomes VY directly
func Serve(b *core.Ball, g parameter.Geometry, receiver core.Side, speed, angle vmath.Fixed) {
	b.X = vmath.FromInt(g.CenterX())
	b.Y = vmath.FromInt(g.CenterY())
	if receiver == core.SideHuman {
		b.VX = -speed
	} else {
		b.VX = speed
	}
	b.VY = angle
}

// ServeAngle draws a vertical serve velocity in [-1.0, 1.0) from rng
func ServeAngle(rng *vmath.Rand) vmath.Fixed {
	half := parameter.ServeAngleRange / 2
	return vmath.FromInt(rng.Intn(parameter.ServeAngleRange)-half) / vmath.Fixed(half)
}
