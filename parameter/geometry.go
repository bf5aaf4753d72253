package parameter

// Playfield dimensions in pixels
const (
	FieldWidth  = 320
	FieldHeight = 256
)

// Paddle and ball dimensions in pixels
const (
	PaddleWidth  = 8
	PaddleHeight = 32
	PaddleOffset = 16 // Distance from screen edge
	BallSize     = 6
)

// ScoreBand is the bottom edge of the score overlay; the ball bounces off it instead of the screen top
const ScoreBand = 48

// Geometry describes the playfield; PaddleHeight is the only field normally reconfigured
type Geometry struct {
	Width        int
	Height       int
	PaddleWidth  int
	PaddleHeight int
	PaddleOffset int
	BallSize     int
	ScoreBand    int
}

// DefaultGeometry returns the standard 320x256 field
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        FieldWidth,
		Height:       FieldHeight,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleOffset: PaddleOffset,
		BallSize:     BallSize,
		ScoreBand:    ScoreBand,
	}
}

// PaddleMinY is the lowest legal paddle centre
func (g Geometry) PaddleMinY() int { return g.PaddleHeight / 2 }

// PaddleMaxY is the highest legal paddle centre
func (g Geometry) PaddleMaxY() int { return g.Height - g.PaddleHeight/2 }

// HumanPaddleX is the left edge of the human paddle
func (g Geometry) HumanPaddleX() int { return g.PaddleOffset }

// AIPaddleX is the left edge of the AI paddle
func (g Geometry) AIPaddleX() int { return g.Width - g.PaddleOffset - g.PaddleWidth }

func (g Geometry) CenterX() int { return g.Width / 2 }
func (g Geometry) CenterY() int { return g.Height / 2 }
