package fsm

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadConfig parses a TOML byte slice and wires actions and transitions onto declared states
// Validates all references (states, guards, actions, events)
// Clears previously loaded actions and transitions
func (m *Machine[T]) LoadConfig(data []byte) error {
	// 1. Decode TOML into intermediate config
	var config RootConfig
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return errors.Wrap(err, "failed to unmarshal FSM config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("unknown FSM config keys: %s", strings.Join(keys, ", "))
	}

	// 2. Clear existing wiring, declared states remain
	for _, node := range m.nodes {
		node.OnEnter = node.OnEnter[:0]
		node.OnExit = node.OnExit[:0]
		node.Transitions = node.Transitions[:0]
	}

	// 3. Sort keys so errors are reported deterministically
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for _, name := range stateNames {
		cfg := config.States[name]
		id, ok := m.names[name]
		if !ok {
			return errors.Errorf("config references undeclared state '%s'", name)
		}
		node := m.nodes[id]

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return errors.Wrapf(err, "state '%s' OnEnter", name)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return errors.Wrapf(err, "state '%s' OnExit", name)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return errors.Wrapf(err, "state '%s' transitions", name)
		}
	}

	// 4. Validate initial state
	initialID, ok := m.names[config.InitialState]
	if !ok {
		return errors.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, errors.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		if cfg.Arg != "" {
			args = cfg.Arg
		}

		actions = append(actions, Action[T]{
			Func: fn,
			Args: args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, cfg := range configs {
		targetID, ok := m.names[cfg.Target]
		if !ok {
			return errors.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType := EventTick
		if cfg.Trigger != "Tick" {
			et, ok := m.eventReg[cfg.Trigger]
			if !ok {
				return errors.Errorf("unknown event type '%s'", cfg.Trigger)
			}
			eventType = et
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return errors.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
		})
	}
	return nil
}
