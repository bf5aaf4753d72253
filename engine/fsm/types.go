package fsm

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// EventType names an external trigger; 0 is reserved for Tick (auto-transition)
type EventType int

const EventTick EventType = 0

// Machine is a flat finite state machine driven by events and per-frame ticks
// T is the context type passed to actions and guards (e.g., *engine.Match)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]
	names map[string]StateID

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID   StateID
	previousStateID StateID
	ticksInState    int

	// Dependency Injection
	eventReg  map[string]EventType
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order, first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // 0 = Tick (auto-transition)
	Guard    GuardFunc[T] // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
