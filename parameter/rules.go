package parameter

import "github.com/lixenwraith/vi-pong/vmath"

// Win condition
const WinningScore = 11

// Ball speed settings (Q8.8 pixels per frame)
var (
	BallInitialSpeed  = vmath.FromInt(6)
	BallMaxSpeed      = vmath.FromInt(12)
	BallSpeedIncrease = vmath.Fixed(48) // Added each rally
)

// Spin and vertical velocity bounds (Q8.8)
var (
	SpinMax      = vmath.FromInt(3)
	VelocityYMax = vmath.FromInt(4)
)

// SafetyMargin is the runaway bound in pixels beyond the field on every side
const SafetyMargin = 50

// ServeAngleRange is the number of serve angle buckets, centred on zero
const ServeAngleRange = 256

// Rules holds the per-match tunables
type Rules struct {
	WinningScore  int
	InitialSpeed  vmath.Fixed
	MaxSpeed      vmath.Fixed
	SpeedIncrease vmath.Fixed
}

// DefaultRules returns first-to-11 with the standard speed ramp
func DefaultRules() Rules {
	return Rules{
		WinningScore:  WinningScore,
		InitialSpeed:  BallInitialSpeed,
		MaxSpeed:      BallMaxSpeed,
		SpeedIncrease: BallSpeedIncrease,
	}
}
