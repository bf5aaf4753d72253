// Package app routes per-frame input to the match according to the session phase
package app

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/highscore"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
)

// Session is the match surface the frame loop drives; *engine.Match implements it
type Session interface {
	Phase() engine.Phase
	Start() bool
	Pause() bool
	Resume() bool
	Quit() bool
	Dismiss(qualifies bool) bool
	FinishEntry() bool
	AdvanceFrame(pointerY int)

	SetDifficulty(d parameter.Difficulty)
	Difficulty() parameter.Difficulty
	Winner() (core.Side, bool)
	PlayerScore() int
	AIScore() int

	Ball() core.Ball
	PlayerPaddle() core.Paddle
	AIPaddle() core.Paddle
	Config() engine.Config
}

var _ Session = (*engine.Match)(nil)

// Muter switches audio output; *audio.SoundManager implements it
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Game owns the session, the high-score table and the name being typed
type Game struct {
	session Session
	store   *highscore.Store
	table   highscore.Table
	name    highscore.NameBuffer
	matchID uuid.UUID
	sound   Muter
}

// NewGame wires a session to a loaded table; store may be nil to disable persistence
func NewGame(session Session, store *highscore.Store, table highscore.Table) *Game {
	return &Game{
		session: session,
		store:   store,
		table:   table,
	}
}

// SetSound attaches the mute toggle; nil disables it
func (g *Game) SetSound(m Muter) {
	g.sound = m
}

// Tick handles one frame of input, returns false when the program should exit
func (g *Game) Tick(in input.State) bool {
	if in.Has(input.Close) {
		return false
	}

	// M toggles sound everywhere except while a name is being typed
	if in.Has(input.Key) && (in.Key == 'm' || in.Key == 'M') && g.session.Phase() != engine.PhaseHighScoreEntry {
		g.toggleMute()
	}

	switch g.session.Phase() {
	case engine.PhaseTitle:
		if in.Has(input.Escape) {
			return false
		}
		if in.Has(input.Click) {
			g.start()
			return true
		}
		if in.Has(input.Key) {
			g.selectDifficulty(in.Key)
		}

	case engine.PhasePlaying:
		if in.Has(input.Escape) {
			g.session.Pause()
			return true
		}
		g.session.AdvanceFrame(in.PointerY)
		if g.session.Phase() == engine.PhaseGameOver {
			g.logResult()
		}

	case engine.PhasePaused:
		if in.Has(input.Click) {
			g.session.Resume()
		} else if in.Has(input.Escape) {
			log.Printf("match %s: abandoned at %d-%d", g.matchID, g.session.PlayerScore(), g.session.AIScore())
			g.session.Quit()
		}

	case engine.PhaseGameOver:
		if in.Has(input.Click) {
			g.dismiss()
		}

	case engine.PhaseHighScoreEntry:
		if in.Has(input.Key) {
			g.editName(in.Key)
		}
	}
	return true
}

func (g *Game) start() {
	if !g.session.Start() {
		return
	}
	g.matchID = uuid.New()
	log.Printf("match %s: start difficulty=%s", g.matchID, g.session.Difficulty())
}

// selectDifficulty handles the menu digits 1-3 and persists a changed choice
func (g *Game) selectDifficulty(key rune) {
	if key < '1' || key > '3' {
		return
	}
	d := parameter.Difficulty(key - '1')
	if d == g.session.Difficulty() {
		return
	}
	g.session.SetDifficulty(d)
	g.table.Difficulty = g.session.Difficulty()
	g.save()
}

func (g *Game) toggleMute() {
	if g.sound == nil {
		return
	}
	g.sound.SetMuted(!g.sound.Muted())
	log.Printf("sound muted=%v", g.sound.Muted())
}

func (g *Game) logResult() {
	winner, _ := g.session.Winner()
	log.Printf("match %s: over %d-%d winner=%s", g.matchID, g.session.PlayerScore(), g.session.AIScore(), winner)
}

func (g *Game) dismiss() {
	winner, ok := g.session.Winner()
	qualifies := ok && winner == core.SideHuman && g.table.Qualifies(g.session.PlayerScore())
	g.session.Dismiss(qualifies)
	if g.session.Phase() == engine.PhaseHighScoreEntry {
		g.name.Reset()
	}
}

func (g *Game) editName(key rune) {
	switch key {
	case input.CodeEnter, '\n':
		if g.name.Len() > 0 {
			rank := g.table.Add(g.name.String(), g.session.PlayerScore())
			log.Printf("match %s: %q ranked %d with %d", g.matchID, g.name.String(), rank+1, g.session.PlayerScore())
			g.save()
		}
		g.name.Reset()
		g.session.FinishEntry()
	case input.CodeBackspace, 127:
		g.name.Backspace()
	default:
		g.name.Type(key)
	}
}

func (g *Game) save() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.table); err != nil {
		log.Printf("high scores: %v", err)
	}
}

// View snapshots everything the renderer needs
func (g *Game) View() render.View {
	cfg := g.session.Config()
	winner, _ := g.session.Winner()
	return render.View{
		Phase:       g.session.Phase(),
		Geometry:    cfg.Geometry,
		Rules:       cfg.Rules,
		Ball:        g.session.Ball(),
		PlayerY:     g.session.PlayerPaddle().Y,
		AIY:         g.session.AIPaddle().Y,
		PlayerScore: g.session.PlayerScore(),
		AIScore:     g.session.AIScore(),
		Winner:      winner,
		Difficulty:  g.session.Difficulty(),
		Scores:      g.table,
		Entry:       g.name.Display(),
		Muted:       g.sound != nil && g.sound.Muted(),
	}
}

func (g *Game) Table() highscore.Table { return g.table }
func (g *Game) MatchID() uuid.UUID     { return g.matchID }
func (g *Game) Name() string           { return g.name.String() }

// PhaseLog writes phase transitions to the standard logger
type PhaseLog struct {
	engine.NopListener
}

func (PhaseLog) OnPhaseChange(from, to engine.Phase) {
	log.Printf("phase %s -> %s", from, to)
}
