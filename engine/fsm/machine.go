package fsm

import (
	"github.com/pkg/errors"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		eventReg:  make(map[string]EventType),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterEvent binds a config trigger name to an event type
func (m *Machine[T]) RegisterEvent(name string, et EventType) {
	m.eventReg[name] = et
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return errors.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.previousStateID = StateNone
	m.activeStateID = node.ID
	m.ticksInState = 0
	runActions(ctx, node.OnEnter)
	return nil
}

// Update advances the active state by one tick and evaluates tick transitions
// Returns true if a transition fired
func (m *Machine[T]) Update(ctx T) bool {
	if m.activeStateID == StateNone {
		return false
	}
	m.ticksInState++
	return m.fire(ctx, EventTick)
}

// HandleEvent routes an external event to the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, et EventType) bool {
	if m.activeStateID == StateNone || et == EventTick {
		return false
	}
	return m.fire(ctx, et)
}

// Accepts reports whether et would trigger a transition from the active state right now
func (m *Machine[T]) Accepts(ctx T, et EventType) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == et && (trans.Guard == nil || trans.Guard(ctx)) {
			return true
		}
	}
	return false
}

// CanTransition checks if the graph has any edge from -> to, ignoring guards
func (m *Machine[T]) CanTransition(from, to StateID) bool {
	node, ok := m.nodes[from]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.TargetID == to {
			return true
		}
	}
	return false
}

func (m *Machine[T]) fire(ctx T, et EventType) bool {
	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != et {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// transition performs the state change, self-transitions re-run exit and enter
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	target, ok := m.nodes[targetID]
	if !ok {
		panic(errors.Errorf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	if current, ok := m.nodes[m.activeStateID]; ok {
		runActions(ctx, current.OnExit)
	}

	m.previousStateID = m.activeStateID
	m.activeStateID = targetID
	m.ticksInState = 0

	runActions(ctx, target.OnEnter)
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if _, ok := m.nodes[m.InitialStateID]; !ok {
		return errors.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	if m.activeStateID == StateNone {
		return m.Init(ctx)
	}
	m.transition(ctx, m.InitialStateID)
	return nil
}

// Current returns the active StateID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// Previous returns the state active before the last transition, StateNone after Init
func (m *Machine[T]) Previous() StateID {
	return m.previousStateID
}

// StateName returns the name for id, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TicksInState returns Update calls since the active state was entered
func (m *Machine[T]) TicksInState() int {
	return m.ticksInState
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
