package fsm

// AddState adds a node to the machine
// States are declared in code so callers can map their own enums onto StateIDs;
// the config only wires actions and transitions between them
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
		OnEnter:     make([]Action[T], 0),
		OnExit:      make([]Action[T], 0),
	}
	m.nodes[id] = node
	m.names[name] = id
	return node
}
