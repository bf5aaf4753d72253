package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Overlaps tests the ball hit-box against a paddle rectangle, edges inclusive
// paddleX is the paddle's left edge, paddleY its centre
func Overlaps(b core.Ball, paddleX, paddleY int, g parameter.Geometry) bool {
	ballX, ballY := b.Pixel()
	half := g.BallSize / 2

	ballLeft := ballX - half
	ballRight := ballX + half
	ballTop := ballY - half
	ballBottom := ballY + half

	paddleTop := paddleY - g.PaddleHeight/2
	paddleBottom := paddleY + g.PaddleHeight/2
	paddleRight := paddleX + g.PaddleWidth

	return ballRight >= paddleX && ballLeft <= paddleRight &&
		ballBottom >= paddleTop && ballTop <= paddleBottom
}

// Spin maps the strike offset from paddle centre linearly onto [-SpinMax, SpinMax]
func Spin(ballY, paddleY int, g parameter.Geometry) vmath.Fixed {
	halfHeight := g.PaddleHeight / 2
	if halfHeight < 1 {
		halfHeight = 1
	}

	offset := vmath.Fixed(ballY - paddleY)
	spin := offset * parameter.SpinMax / vmath.Fixed(halfHeight)

	return vmath.Clamp(spin, -parameter.SpinMax, parameter.SpinMax)
}

// RampSpeed returns the post-hit horizontal speed magnitude, capped at MaxSpeed
func RampSpeed(vx vmath.Fixed, r parameter.Rules) vmath.Fixed {
	return min(vmath.Abs(vx)+r.SpeedIncrease, r.MaxSpeed)
}

// ResolvePaddleHit reflects the ball off side's paddle
// The ball is moved just outside the paddle face so it cannot stick on the next frame
func ResolvePaddleHit(b *core.Ball, side core.Side, ballY, paddleY int, g parameter.Geometry, r parameter.Rules) {
	half := g.BallSize / 2
	speed := RampSpeed(b.VX, r)

	if side == core.SideHuman {
		b.X = vmath.FromInt(g.HumanPaddleX() + g.PaddleWidth + half)
		b.VX = speed
	} else {
		b.X = vmath.FromInt(g.AIPaddleX() - half)
		b.VX = -speed
	}

	b.VY += Spin(ballY, paddleY, g)
}
