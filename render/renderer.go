// Package render draws the match and the menus onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/highscore"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/vmath"
)

const (
	ballRune   = '●'
	paddleRune = '█'
	netRune    = '│'

	mutedLabel = "MUTED"
)

// View is everything one frame needs; the renderer holds no game state
type View struct {
	Phase    engine.Phase
	Geometry parameter.Geometry
	Rules    parameter.Rules

	Ball        core.Ball
	PlayerY     int
	AIY         int
	PlayerScore int
	AIScore     int
	Winner      core.Side

	Difficulty parameter.Difficulty
	Scores     highscore.Table
	Entry      string // Name entry display, cursor and padding included
	Muted      bool
}

// Renderer maps the pixel field onto the terminal cell grid
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewRenderer sizes itself from the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	r := &Renderer{screen: screen}
	r.UpdateDimensions(w, h)
	return r
}

// UpdateDimensions records a new terminal size
func (r *Renderer) UpdateDimensions(width, height int) {
	r.width = max(width, 1)
	r.height = max(height, 1)
}

// Viewport returns the terminal rows holding the field
func (r *Renderer) Viewport() (top, rows int) {
	return 0, r.height
}

// FieldToCell maps a field pixel to a terminal cell
func (r *Renderer) FieldToCell(x, y int, g parameter.Geometry) (col, row int) {
	col = x * r.width / g.Width
	row = y * r.height / g.Height
	return vmath.Clamp(col, 0, r.width-1), vmath.Clamp(row, 0, r.height-1)
}

// RenderFrame renders the entire frame for the current phase
func (r *Renderer) RenderFrame(v View) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	switch v.Phase {
	case engine.PhaseTitle:
		r.drawTitle(v, defaultStyle)
	case engine.PhaseHighScoreEntry:
		r.drawEntry(v, defaultStyle)
	default:
		r.drawField(v, defaultStyle)
		switch v.Phase {
		case engine.PhasePaused:
			r.drawPaused(defaultStyle)
		case engine.PhaseGameOver:
			r.drawGameOver(v, defaultStyle)
		}
	}

	if v.Muted {
		r.drawText(r.width-len(mutedLabel)-1, 0, mutedLabel, defaultStyle.Foreground(RgbHint))
	}

	r.screen.Show()
}

func (r *Renderer) drawField(v View, defaultStyle tcell.Style) {
	g := v.Geometry

	// Net below the score band, every other row
	netCol, bandRow := r.FieldToCell(g.CenterX(), g.ScoreBand, g)
	netStyle := defaultStyle.Foreground(RgbCenterLine)
	for row := bandRow; row < r.height; row += 2 {
		r.screen.SetContent(netCol, row, netRune, nil, netStyle)
	}

	// Scores centred in each half of the band
	_, scoreRow := r.FieldToCell(0, g.ScoreBand/2, g)
	scoreStyle := defaultStyle.Foreground(RgbScore).Bold(true)
	r.drawCenteredAt(r.width/4, scoreRow, fmt.Sprintf("%d", v.PlayerScore), scoreStyle)
	r.drawCenteredAt(3*r.width/4, scoreRow, fmt.Sprintf("%d", v.AIScore), scoreStyle)

	paddleStyle := defaultStyle.Foreground(RgbField)
	r.drawPaddle(g.HumanPaddleX()+g.PaddleWidth/2, v.PlayerY, g, paddleStyle)
	r.drawPaddle(g.AIPaddleX()+g.PaddleWidth/2, v.AIY, g, paddleStyle)

	bx, by := v.Ball.Pixel()
	if bx < 0 || bx >= g.Width || by < 0 || by >= g.Height {
		return
	}
	col, row := r.FieldToCell(bx, by, g)
	ballColor := GetBallColor(BallProgress(v.Ball.VX, v.Rules.InitialSpeed, v.Rules.MaxSpeed))
	r.screen.SetContent(col, row, ballRune, nil, defaultStyle.Foreground(ballColor))
}

func (r *Renderer) drawPaddle(x, centerY int, g parameter.Geometry, style tcell.Style) {
	half := g.PaddleHeight / 2
	col, top := r.FieldToCell(x, centerY-half, g)
	_, bottom := r.FieldToCell(x, centerY+half-1, g)
	for row := top; row <= bottom; row++ {
		r.screen.SetContent(col, row, paddleRune, nil, style)
	}
}

func (r *Renderer) drawTitle(v View, defaultStyle tcell.Style) {
	row := r.height / 5
	r.drawCentered(row, "V I - P O N G", defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawCentered(row+2, "CLICK TO START", defaultStyle.Foreground(RgbHint))

	r.drawDifficulties(row+4, v.Difficulty, defaultStyle)

	scored := v.Scores.Scored()
	if len(scored) > 0 {
		r.drawCentered(row+6, "HIGH SCORES", defaultStyle.Foreground(RgbScore))
		for i, idx := range scored {
			r.drawCentered(row+7+i, v.Scores.Line(idx), defaultStyle.Foreground(RgbHint))
		}
	}

	r.drawCentered(r.height-2, "M TO MUTE  ESC TO QUIT", defaultStyle.Foreground(RgbHint))
}

// drawDifficulties lays out "1 EASY  2 MEDIUM  3 HARD" with the selection highlighted
func (r *Renderer) drawDifficulties(row int, selected parameter.Difficulty, defaultStyle tcell.Style) {
	const gap = "  "

	levels := parameter.Difficulties()
	labels := make([]string, len(levels))
	total := 0
	for i, d := range levels {
		labels[i] = fmt.Sprintf("%d %s", i+1, d)
		total += runewidth.StringWidth(labels[i])
	}
	total += runewidth.StringWidth(gap) * (len(labels) - 1)

	x := (r.width - total) / 2
	for i, d := range levels {
		style := defaultStyle.Foreground(RgbHint)
		if d == selected {
			style = defaultStyle.Foreground(RgbSelected).Reverse(true)
		}
		x = r.drawText(x, row, labels[i], style)
		x += runewidth.StringWidth(gap)
	}
}

func (r *Renderer) drawPaused(defaultStyle tcell.Style) {
	mid := r.height / 2
	r.drawCentered(mid, "PAUSED", defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawCentered(mid+2, "CLICK TO RESUME  ESC FOR TITLE", defaultStyle.Foreground(RgbHint))
}

func (r *Renderer) drawGameOver(v View, defaultStyle tcell.Style) {
	mid := r.height / 2

	banner, color := "AI WINS", RgbLose
	if v.Winner == core.SideHuman {
		banner, color = "YOU WIN", RgbWin
	}
	r.drawCentered(mid, banner, defaultStyle.Foreground(color).Bold(true))
	r.drawCentered(mid+1, fmt.Sprintf("%d - %d", v.PlayerScore, v.AIScore), defaultStyle.Foreground(RgbScore))
	r.drawCentered(mid+3, "CLICK TO CONTINUE", defaultStyle.Foreground(RgbHint))
}

func (r *Renderer) drawEntry(v View, defaultStyle tcell.Style) {
	row := r.height / 4
	r.drawCentered(row, "NEW HIGH SCORE", defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawCentered(row+2, fmt.Sprintf("SCORE %d", v.PlayerScore), defaultStyle.Foreground(RgbScore))

	// Name slots with the cursor picked out
	x := (r.width - runewidth.StringWidth(v.Entry)) / 2
	for _, ch := range v.Entry {
		style := defaultStyle.Foreground(RgbScore)
		if ch == '_' {
			style = defaultStyle.Foreground(RgbEntryCursor).Bold(true)
		}
		r.screen.SetContent(x, row+4, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}

	r.drawCentered(row+6, "TYPE YOUR NAME  ENTER TO SAVE", defaultStyle.Foreground(RgbHint))
}

func (r *Renderer) drawCentered(row int, text string, style tcell.Style) {
	r.drawCenteredAt(r.width/2, row, text, style)
}

func (r *Renderer) drawCenteredAt(centerX, row int, text string, style tcell.Style) {
	r.drawText(centerX-runewidth.StringWidth(text)/2, row, text, style)
}

// drawText writes text from x and returns the column after it
func (r *Renderer) drawText(x, row int, text string, style tcell.Style) int {
	if row < 0 || row >= r.height {
		return x
	}
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, row, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}
