package core

// Paddle holds an integer pixel centre
type Paddle struct {
	Y       int
	TargetY int // AI prediction; mirrors the pointer sample for the human paddle
}

// Center places both the paddle and its target at y
func (p *Paddle) Center(y int) {
	p.Y = y
	p.TargetY = y
}

// Side identifies a paddle owner
type Side uint8

const (
	SideHuman Side = iota // Left paddle, pointer controlled
	SideAI                // Right paddle, predictive controller
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideAI
	}
	return SideHuman
}

func (s Side) String() string {
	if s == SideHuman {
		return "human"
	}
	return "ai"
}
