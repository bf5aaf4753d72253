package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Result reports what happened during one ball step
type Result struct {
	WallBounce bool
	Hit        bool
	HitSide    core.Side
	Goal       bool
	Scorer     core.Side
}

// Step advances the ball one frame against both paddle centres
// Goal detection is reported, not applied: scoring and re-serve belong to the match
func Step(b *core.Ball, humanY, aiY int, g parameter.Geometry, r parameter.Rules) Result {
	var res Result

	Integrate(b)

	// Pixel position sampled before wall correction; spin and half-field tests use it
	ballX, ballY := b.Pixel()

	res.WallBounce = BounceWalls(b, g)

	if b.VX < 0 && ballX < g.CenterX() && Overlaps(*b, g.HumanPaddleX(), humanY, g) {
		ResolvePaddleHit(b, core.SideHuman, ballY, humanY, g, r)
		res.Hit = true
		res.HitSide = core.SideHuman
	}

	if b.VX > 0 && ballX > g.CenterX() && Overlaps(*b, g.AIPaddleX(), aiY, g) {
		ResolvePaddleHit(b, core.SideAI, ballY, aiY, g, r)
		res.Hit = true
		res.HitSide = core.SideAI
	}

	ClampVelocityY(b)
	ClampSafetyY(b, g)

	res.Scorer, res.Goal = GoalCrossed(*b, g)
	return res
}

// GoalCrossed reports which side scored, if any
// The left goal is tested first so an oversized step crossing both resolves the same way every time
func GoalCrossed(b core.Ball, g parameter.Geometry) (scorer core.Side, ok bool) {
	x := vmath.ToInt(b.X)

	if x < -g.BallSize || b.X < vmath.FromInt(-parameter.SafetyMargin) {
		return core.SideAI, true
	}
	if x > g.Width+g.BallSize || b.X > vmath.FromInt(g.Width+parameter.SafetyMargin) {
		return core.SideHuman, true
	}
	return core.SideHuman, false
}
