package engine

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine/fsm"
)

//go:embed session.toml
var sessionGraph []byte

// newSessionMachine declares the phases and loads the transition table
func newSessionMachine() (*fsm.Machine[*Match], error) {
	m := fsm.NewMachine[*Match]()

	for _, p := range Phases() {
		m.AddState(fsm.StateID(p), p.String())
	}
	for name, et := range eventNames {
		m.RegisterEvent(name, et)
	}
	registerSessionComponents(m)

	if err := m.LoadConfig(sessionGraph); err != nil {
		return nil, errors.Wrap(err, "session graph")
	}
	return m, nil
}

// registerSessionComponents registers all guards and actions with the FSM
func registerSessionComponents(m *fsm.Machine[*Match]) {
	// --- ACTIONS ---

	// ResetMatch: scores, paddles and serve back to a fresh match
	m.RegisterAction("ResetMatch", func(match *Match, _ any) {
		match.reset()
	})

	// NotifyPhase: forwards the transition to the listener, self-transitions are silent
	m.RegisterAction("NotifyPhase", func(match *Match, _ any) {
		from, to := Phase(m.Previous()), Phase(m.Current())
		if from == to || m.Previous() == fsm.StateNone {
			return
		}
		match.listener.OnPhaseChange(from, to)
	})

	// --- GUARDS ---

	// MatchOver: a score reached the threshold this frame
	m.RegisterGuard("MatchOver", func(match *Match) bool {
		return match.IsTerminal()
	})

	// EntryEarned: the human won and the caller reported a qualifying score
	m.RegisterGuard("EntryEarned", func(match *Match) bool {
		winner, ok := match.Winner()
		return ok && winner == core.SideHuman && match.entryEarned
	})
}
