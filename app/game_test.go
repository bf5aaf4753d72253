package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/highscore"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fakeSession follows the phase graph without any simulation
type fakeSession struct {
	phase      engine.Phase
	difficulty parameter.Difficulty
	player, ai int
	frames     []int
	dismissed  []bool
}

func (f *fakeSession) Phase() engine.Phase { return f.phase }

func (f *fakeSession) move(from, to engine.Phase) bool {
	if f.phase != from {
		return false
	}
	f.phase = to
	return true
}

func (f *fakeSession) Start() bool  { return f.move(engine.PhaseTitle, engine.PhasePlaying) }
func (f *fakeSession) Pause() bool  { return f.move(engine.PhasePlaying, engine.PhasePaused) }
func (f *fakeSession) Resume() bool { return f.move(engine.PhasePaused, engine.PhasePlaying) }
func (f *fakeSession) Quit() bool   { return f.move(engine.PhasePaused, engine.PhaseTitle) }

func (f *fakeSession) Dismiss(qualifies bool) bool {
	if f.phase != engine.PhaseGameOver {
		return false
	}
	f.dismissed = append(f.dismissed, qualifies)
	if qualifies {
		f.phase = engine.PhaseHighScoreEntry
	} else {
		f.phase = engine.PhaseTitle
	}
	return true
}

func (f *fakeSession) FinishEntry() bool {
	return f.move(engine.PhaseHighScoreEntry, engine.PhaseTitle)
}

func (f *fakeSession) AdvanceFrame(pointerY int) { f.frames = append(f.frames, pointerY) }

func (f *fakeSession) SetDifficulty(d parameter.Difficulty) { f.difficulty = d.Normalize() }
func (f *fakeSession) Difficulty() parameter.Difficulty     { return f.difficulty }
func (f *fakeSession) PlayerScore() int                     { return f.player }
func (f *fakeSession) AIScore() int                         { return f.ai }
func (f *fakeSession) Ball() core.Ball                      { return core.Ball{} }
func (f *fakeSession) PlayerPaddle() core.Paddle            { return core.Paddle{Y: 40} }
func (f *fakeSession) AIPaddle() core.Paddle                { return core.Paddle{Y: 200} }
func (f *fakeSession) Config() engine.Config                { return engine.DefaultConfig() }

func (f *fakeSession) Winner() (core.Side, bool) {
	switch {
	case f.player >= parameter.WinningScore:
		return core.SideHuman, true
	case f.ai >= parameter.WinningScore:
		return core.SideAI, true
	}
	return core.SideHuman, false
}

type fakeSound struct{ muted bool }

func (f *fakeSound) SetMuted(muted bool) { f.muted = muted }
func (f *fakeSound) Muted() bool         { return f.muted }

func saved(store *highscore.Store) bool {
	_, err := os.Stat(store.Path)
	return err == nil
}

func newRealGame(t *testing.T, cfg engine.Config) (*Game, *engine.Match, *highscore.Store) {
	t.Helper()
	m, err := engine.NewMatch(cfg, nil)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	store := highscore.NewStore(filepath.Join(t.TempDir(), "scores.toml"))
	return NewGame(m, store, highscore.Default()), m, store
}

func click() input.State        { return input.State{Events: input.Click} }
func escape() input.State       { return input.State{Events: input.Escape} }
func key(r rune) input.State    { return input.State{Events: input.Key, Key: r} }
func pointer(y int) input.State { return input.State{PointerY: y} }
func typed(s string) []input.State {
	states := make([]input.State, 0, len(s))
	for _, r := range s {
		states = append(states, key(r))
	}
	return states
}

func TestTitleQuit(t *testing.T) {
	g, _, _ := newRealGame(t, engine.DefaultConfig())

	if !g.Tick(input.State{}) {
		t.Fatal("idle title frame requested exit")
	}
	if g.Tick(escape()) {
		t.Error("Escape on title should exit")
	}
}

func TestCloseQuitsFromAnyPhase(t *testing.T) {
	for _, p := range engine.Phases() {
		t.Run(p.String(), func(t *testing.T) {
			g := NewGame(&fakeSession{phase: p}, nil, highscore.Default())
			if g.Tick(input.State{Events: input.Close}) {
				t.Errorf("Close in %s did not exit", p)
			}
		})
	}
}

func TestTitleDifficultyPersists(t *testing.T) {
	g, m, store := newRealGame(t, engine.DefaultConfig())

	g.Tick(key('3'))
	if m.Difficulty() != parameter.DifficultyHard {
		t.Fatalf("difficulty got %s, want HARD", m.Difficulty())
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Difficulty != parameter.DifficultyHard {
		t.Errorf("persisted difficulty got %s, want HARD", loaded.Difficulty)
	}

	for _, r := range []rune{'0', '4', 'x'} {
		g.Tick(key(r))
		if m.Difficulty() != parameter.DifficultyHard {
			t.Errorf("key %q changed difficulty to %s", r, m.Difficulty())
		}
	}

	g.Tick(key('1'))
	if m.Difficulty() != parameter.DifficultyEasy || g.Table().Difficulty != parameter.DifficultyEasy {
		t.Errorf("got %s / %s, want EASY", m.Difficulty(), g.Table().Difficulty)
	}
}

func TestTitleSameDifficultySkipsSave(t *testing.T) {
	g, m, store := newRealGame(t, engine.DefaultConfig())

	g.Tick(key('2'))
	if m.Difficulty() != parameter.DifficultyMedium {
		t.Fatalf("difficulty got %s, want MEDIUM", m.Difficulty())
	}
	if saved(store) {
		t.Error("reselecting the current difficulty wrote the table")
	}

	g.Tick(key('3'))
	if !saved(store) {
		t.Error("changed difficulty was not saved")
	}
}

func TestMuteToggle(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseTitle}
	sound := &fakeSound{}
	g := NewGame(fake, nil, highscore.Default())

	g.Tick(key('m'))
	if sound.muted {
		t.Fatal("toggle reached a sound that was never attached")
	}

	g.SetSound(sound)
	g.Tick(key('m'))
	if !sound.muted || !g.View().Muted {
		t.Fatal("m did not mute")
	}

	fake.phase = engine.PhasePlaying
	g.Tick(key('M'))
	if sound.muted || g.View().Muted {
		t.Error("M did not unmute during play")
	}
	if len(fake.frames) != 1 {
		t.Errorf("frames got %d, want play to continue", len(fake.frames))
	}
}

func TestMuteKeyTypesDuringEntry(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseHighScoreEntry, player: 11}
	sound := &fakeSound{}
	g := NewGame(fake, nil, highscore.Default())
	g.SetSound(sound)

	g.Tick(key('m'))
	if sound.muted {
		t.Error("m toggled sound while typing a name")
	}
	if g.Name() != "m" {
		t.Errorf("name got %q, want m", g.Name())
	}
}

func TestStartAssignsMatchID(t *testing.T) {
	g, m, _ := newRealGame(t, engine.DefaultConfig())

	if g.MatchID() != uuid.Nil {
		t.Fatal("match id set before any start")
	}
	g.Tick(click())
	if m.Phase() != engine.PhasePlaying {
		t.Fatalf("phase got %s, want Playing", m.Phase())
	}
	first := g.MatchID()
	if first == uuid.Nil {
		t.Fatal("match id not assigned on start")
	}

	g.Tick(escape())
	g.Tick(escape())
	if m.Phase() != engine.PhaseTitle {
		t.Fatalf("phase got %s, want Title", m.Phase())
	}
	g.Tick(click())
	if g.MatchID() == first {
		t.Error("second match reused the first id")
	}
}

func TestPauseResumeQuit(t *testing.T) {
	g, m, _ := newRealGame(t, engine.DefaultConfig())
	g.Tick(click())
	g.Tick(pointer(100))

	g.Tick(escape())
	if m.Phase() != engine.PhasePaused {
		t.Fatalf("phase got %s, want Paused", m.Phase())
	}
	frozen := m.Ball()
	g.Tick(pointer(200))
	if m.Ball() != frozen {
		t.Error("ball moved while paused")
	}

	g.Tick(click())
	if m.Phase() != engine.PhasePlaying {
		t.Fatalf("phase got %s, want Playing", m.Phase())
	}
	g.Tick(pointer(200))
	if m.Ball() == frozen {
		t.Error("ball did not move after resume")
	}
	if got := m.PlayerPaddle().Y; got != 200 {
		t.Errorf("player paddle got %d, want 200", got)
	}

	g.Tick(escape())
	g.Tick(escape())
	if m.Phase() != engine.PhaseTitle {
		t.Errorf("phase got %s, want Title", m.Phase())
	}
}

func TestAIWinReturnsToTitle(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Rules.WinningScore = 1
	g, m, store := newRealGame(t, cfg)

	g.Tick(click())
	// A paddle parked against the top never reaches the ball below the score band
	for i := 0; i < 2000 && m.Phase() == engine.PhasePlaying; i++ {
		g.Tick(pointer(0))
	}
	if m.Phase() != engine.PhaseGameOver {
		t.Fatalf("phase got %s, want GameOver", m.Phase())
	}
	if winner, ok := m.Winner(); !ok || winner != core.SideAI {
		t.Fatalf("winner got %s/%v, want ai", winner, ok)
	}

	g.Tick(pointer(0))
	if m.Phase() != engine.PhaseGameOver {
		t.Fatal("GameOver left without a click")
	}

	g.Tick(click())
	if m.Phase() != engine.PhaseTitle {
		t.Fatalf("phase got %s, want Title", m.Phase())
	}
	if saved(store) {
		t.Error("AI win must not write the table")
	}
}

func TestHumanWinNameEntry(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseGameOver, player: 11, ai: 4}
	store := highscore.NewStore(filepath.Join(t.TempDir(), "scores.toml"))
	g := NewGame(fake, store, highscore.Default())

	g.Tick(click())
	if fake.phase != engine.PhaseHighScoreEntry {
		t.Fatalf("phase got %s, want HighScoreEntry", fake.phase)
	}
	if len(fake.dismissed) != 1 || !fake.dismissed[0] {
		t.Fatalf("dismissed got %v, want [true]", fake.dismissed)
	}

	// Click in entry is ignored
	g.Tick(click())
	for _, in := range typed("ACE") {
		g.Tick(in)
	}
	g.Tick(key(input.CodeBackspace))
	g.Tick(key('X'))
	if got := g.Name(); got != "ACX" {
		t.Fatalf("name got %q, want %q", got, "ACX")
	}
	if got := g.View().Entry; got != "ACX_...." {
		t.Errorf("entry display got %q", got)
	}

	g.Tick(key(input.CodeEnter))
	if fake.phase != engine.PhaseTitle {
		t.Fatalf("phase got %s, want Title", fake.phase)
	}
	if got := g.Table().Entries[0]; got != (highscore.Entry{Name: "ACX", Score: 11}) {
		t.Errorf("top entry got %+v", got)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Entries[0].Name != "ACX" {
		t.Errorf("persisted top entry got %+v", loaded.Entries[0])
	}
	if g.Name() != "" {
		t.Errorf("name buffer not cleared, got %q", g.Name())
	}
}

func TestHumanWinWithoutQualifying(t *testing.T) {
	table := highscore.Default()
	for i := range table.Entries {
		table.Entries[i] = highscore.Entry{Name: "PRO", Score: 11}
	}
	fake := &fakeSession{phase: engine.PhaseGameOver, player: 11}
	g := NewGame(fake, nil, table)

	g.Tick(click())
	if fake.phase != engine.PhaseTitle {
		t.Errorf("phase got %s, want Title", fake.phase)
	}
	if len(fake.dismissed) != 1 || fake.dismissed[0] {
		t.Errorf("dismissed got %v, want [false]", fake.dismissed)
	}
}

func TestEntryEmptyNameSkipsSave(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseHighScoreEntry, player: 11}
	store := highscore.NewStore(filepath.Join(t.TempDir(), "scores.toml"))
	g := NewGame(fake, store, highscore.Default())

	g.Tick(key(input.CodeBackspace))
	g.Tick(key(input.CodeEnter))
	if fake.phase != engine.PhaseTitle {
		t.Fatalf("phase got %s, want Title", fake.phase)
	}
	if saved(store) {
		t.Error("empty name wrote the table")
	}
	if tb := g.Table(); len(tb.Scored()) != 0 {
		t.Error("empty name added an entry")
	}
}

func TestEntryNameLimit(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseHighScoreEntry, player: 11}
	g := NewGame(fake, nil, highscore.Default())

	for _, in := range typed("ABCDEFGHIJ") {
		g.Tick(in)
	}
	g.Tick(key(0x7f))
	g.Tick(key('Z'))
	g.Tick(key(0x01))
	if got := g.Name(); got != "ABCDEFGZ" {
		t.Errorf("name got %q, want %q", got, "ABCDEFGZ")
	}
	if got := g.View().Entry; got != "ABCDEFGZ" {
		t.Errorf("full entry display got %q", got)
	}
}

func TestPlayingForwardsPointer(t *testing.T) {
	fake := &fakeSession{phase: engine.PhasePlaying}
	g := NewGame(fake, nil, highscore.Default())

	g.Tick(pointer(10))
	g.Tick(pointer(250))
	g.Tick(escape())
	g.Tick(pointer(99))

	if len(fake.frames) != 2 || fake.frames[0] != 10 || fake.frames[1] != 250 {
		t.Errorf("frames got %v, want [10 250]", fake.frames)
	}
	if fake.phase != engine.PhasePaused {
		t.Errorf("phase got %s, want Paused", fake.phase)
	}
}

func TestView(t *testing.T) {
	fake := &fakeSession{phase: engine.PhaseGameOver, player: 11, ai: 7, difficulty: parameter.DifficultyHard}
	g := NewGame(fake, nil, highscore.Default())

	v := g.View()
	if v.Phase != engine.PhaseGameOver || v.Winner != core.SideHuman {
		t.Errorf("phase/winner got %s/%s", v.Phase, v.Winner)
	}
	if v.PlayerScore != 11 || v.AIScore != 7 {
		t.Errorf("scores got %d-%d", v.PlayerScore, v.AIScore)
	}
	if v.PlayerY != 40 || v.AIY != 200 {
		t.Errorf("paddles got %d/%d", v.PlayerY, v.AIY)
	}
	if v.Difficulty != parameter.DifficultyHard {
		t.Errorf("difficulty got %s", v.Difficulty)
	}
	if v.Geometry != parameter.DefaultGeometry() {
		t.Errorf("geometry got %+v", v.Geometry)
	}
	if v.Entry != "_......." {
		t.Errorf("entry got %q", v.Entry)
	}
}
