package engine

import (
	"github.com/lixenwraith/vi-pong/ai"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine/fsm"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Config is fixed for the lifetime of a Match
type Config struct {
	Geometry   parameter.Geometry
	Rules      parameter.Rules
	Difficulty parameter.Difficulty
	Seed       uint32
}

// DefaultConfig returns the standard field, first to 11, Medium, default seed
func DefaultConfig() Config {
	return Config{
		Geometry:   parameter.DefaultGeometry(),
		Rules:      parameter.DefaultRules(),
		Difficulty: parameter.DifficultyMedium,
		Seed:       vmath.DefaultSeed,
	}
}

// Match owns the whole simulation state for one session
// Not safe for concurrent use: the frame loop is the only caller
type Match struct {
	config   Config
	phases   *fsm.Machine[*Match]
	rng      *vmath.Rand
	listener Listener

	ball         core.Ball
	playerPaddle core.Paddle
	aiPaddle     core.Paddle
	brain        ai.Controller

	playerScore int
	aiScore     int
	rallyCount  int
	receiver    core.Side // Side the next serve travels toward
	difficulty  parameter.Difficulty

	entryEarned bool
}

// NewMatch builds a match in the Title phase, already initialized
// A nil listener is replaced with NopListener
func NewMatch(cfg Config, listener Listener) (*Match, error) {
	phases, err := newSessionMachine()
	if err != nil {
		return nil, err
	}
	if listener == nil {
		listener = NopListener{}
	}

	m := &Match{
		config:     cfg,
		phases:     phases,
		rng:        vmath.NewRand(cfg.Seed),
		listener:   listener,
		difficulty: cfg.Difficulty.Normalize(),
		brain:      ai.NewController(parameter.ProfileFor(cfg.Difficulty)),
	}

	if err := phases.Init(m); err != nil {
		return nil, err
	}
	return m, nil
}

// SetListener swaps the event sink; nil silences events
func (m *Match) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	m.listener = l
}

// --- Session operations ---

// Initialize resets scores, rallies, serve owner and paddles, re-serves, applies the
// selected difficulty and returns to Title
// It fails only if the phase machine has lost its initial state
func (m *Match) Initialize() error {
	// Reset re-enters Title, whose OnEnter runs reset
	return m.phases.Reset(m)
}

// reset is the Title OnEnter action
func (m *Match) reset() {
	g := m.config.Geometry

	m.playerScore = 0
	m.aiScore = 0
	m.receiver = core.SideHuman
	m.entryEarned = false
	m.SetDifficulty(m.difficulty)

	m.playerPaddle.Center(g.CenterY())
	m.aiPaddle.Center(g.CenterY())

	m.ResetPoint()
}

// SetDifficulty selects the AI profile, out-of-range values become Medium
func (m *Match) SetDifficulty(d parameter.Difficulty) {
	m.difficulty = d.Normalize()
	m.brain.SetProfile(parameter.ProfileFor(m.difficulty))
}

// ResetPoint re-centres the ball and serves toward the current receiver at a random angle
func (m *Match) ResetPoint() {
	angle := physics.ServeAngle(m.rng)
	physics.Serve(&m.ball, m.config.Geometry, m.receiver, m.config.Rules.InitialSpeed, angle)
	m.rallyCount = 0
	m.brain.Reset()
}

// ServeTo hands the serve to side and re-serves
func (m *Match) ServeTo(side core.Side) {
	m.receiver = side
	m.ResetPoint()
}

// Start leaves Title for a fresh match with the selected difficulty
func (m *Match) Start() bool {
	if !m.phases.Accepts(m, EventStart) {
		return false
	}

	m.SetDifficulty(m.difficulty)
	m.playerScore = 0
	m.aiScore = 0
	m.ResetPoint()

	return m.phases.HandleEvent(m, EventStart)
}

// Pause freezes a running match
func (m *Match) Pause() bool {
	return m.phases.HandleEvent(m, EventPause)
}

// Resume continues a paused match
func (m *Match) Resume() bool {
	return m.phases.HandleEvent(m, EventResume)
}

// Quit abandons a paused match and returns to Title
func (m *Match) Quit() bool {
	return m.phases.HandleEvent(m, EventQuit)
}

// Dismiss leaves GameOver: to name entry when the human won and qualifies, else to Title
func (m *Match) Dismiss(qualifies bool) bool {
	m.entryEarned = qualifies
	return m.phases.HandleEvent(m, EventDismiss)
}

// FinishEntry closes name entry and returns to Title
func (m *Match) FinishEntry() bool {
	return m.phases.HandleEvent(m, EventFinishEntry)
}

// --- Frame ---

// AdvanceFrame runs one simulation step with the human paddle following pointerY
// No-op outside Playing
func (m *Match) AdvanceFrame(pointerY int) {
	if m.Phase() != PhasePlaying {
		return
	}

	g := m.config.Geometry

	m.playerPaddle.Center(vmath.Clamp(pointerY, g.PaddleMinY(), g.PaddleMaxY()))

	m.brain.Update(&m.aiPaddle, m.ball, g, m.rng)

	res := physics.Step(&m.ball, m.playerPaddle.Y, m.aiPaddle.Y, g, m.config.Rules)

	if res.WallBounce {
		m.listener.OnWallBounce()
	}
	if res.Hit {
		m.rallyCount++
		// A human return forces a fresh prediction; after its own hit the AI keeps its cadence
		if res.HitSide == core.SideHuman {
			m.brain.Prime()
		}
		m.listener.OnPaddleHit(res.HitSide, m.rallyCount)
	}
	if res.Goal {
		m.score(res.Scorer)
	}

	// Tick transitions: Playing -> GameOver once a score reaches the threshold
	m.phases.Update(m)
}

func (m *Match) score(scorer core.Side) {
	if scorer == core.SideAI {
		m.aiScore++
	} else {
		m.playerScore++
	}
	// The side scored upon receives the next serve
	m.receiver = scorer.Opponent()
	m.ResetPoint()

	m.listener.OnScore(scorer, m.playerScore, m.aiScore)
}

// IsTerminal reports whether either score has reached the threshold
func (m *Match) IsTerminal() bool {
	w := m.config.Rules.WinningScore
	return m.playerScore >= w || m.aiScore >= w
}

// Winner returns the side that reached the threshold; ok is false until IsTerminal
func (m *Match) Winner() (winner core.Side, ok bool) {
	if !m.IsTerminal() {
		return core.SideHuman, false
	}
	if m.playerScore >= m.config.Rules.WinningScore {
		return core.SideHuman, true
	}
	return core.SideAI, true
}

// --- Accessors ---

func (m *Match) Phase() Phase                     { return Phase(m.phases.Current()) }
func (m *Match) Ball() core.Ball                  { return m.ball }
func (m *Match) PlayerPaddle() core.Paddle        { return m.playerPaddle }
func (m *Match) AIPaddle() core.Paddle            { return m.aiPaddle }
func (m *Match) PlayerScore() int                 { return m.playerScore }
func (m *Match) AIScore() int                     { return m.aiScore }
func (m *Match) RallyCount() int                  { return m.rallyCount }
func (m *Match) ServingSide() core.Side           { return m.receiver }
func (m *Match) Difficulty() parameter.Difficulty { return m.difficulty }
func (m *Match) Controller() ai.Controller        { return m.brain }
func (m *Match) Config() Config                   { return m.config }

// CanTransition checks the declared phase graph, ignoring guards
func (m *Match) CanTransition(from, to Phase) bool {
	return m.phases.CanTransition(fsm.StateID(from), fsm.StateID(to))
}
