package engine

import "github.com/lixenwraith/vi-pong/engine/fsm"

// Phase is the session state; values double as FSM state IDs
type Phase int

const (
	PhaseTitle Phase = iota + 1 // 0 is fsm.StateNone
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseHighScoreEntry
)

var phaseNames = map[Phase]string{
	PhaseTitle:          "Title",
	PhasePlaying:        "Playing",
	PhasePaused:         "Paused",
	PhaseGameOver:       "GameOver",
	PhaseHighScoreEntry: "HighScoreEntry",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Phases lists every session phase in declaration order
func Phases() []Phase {
	return []Phase{PhaseTitle, PhasePlaying, PhasePaused, PhaseGameOver, PhaseHighScoreEntry}
}

// Session events routed through the phase machine
const (
	EventStart fsm.EventType = iota + 1
	EventPause
	EventResume
	EventQuit
	EventDismiss
	EventFinishEntry
)

var eventNames = map[string]fsm.EventType{
	"Start":       EventStart,
	"Pause":       EventPause,
	"Resume":      EventResume,
	"Quit":        EventQuit,
	"Dismiss":     EventDismiss,
	"FinishEntry": EventFinishEntry,
}
