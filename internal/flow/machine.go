// Package flow implements the table-driven state machine that gates every
// screen transition and dispatches normalized input tokens to action
// handlers. The state table is data: legality checks and input lookup are
// map reads, never branching code.
package flow

import (
	"fmt"
	"sort"
	"strings"
)

// State is one named screen/phase of the career flow.
type State string

// ActionID names a registered action handler.
type ActionID string

// ConfirmToken is the canonical token for an acknowledgement keypress.
// Empty input and enter variants fold into it when the state accepts them.
const ConfirmToken = "confirm"

// StateSpec is one row of the state table.
type StateSpec struct {
	// Transitions is the set of states this state may move to.
	Transitions map[State]bool

	// Inputs maps canonical tokens to action IDs.
	Inputs map[string]ActionID

	// AcceptsEmpty folds ""/"enter"/newline input into ConfirmToken.
	AcceptsEmpty bool
}

// Handler runs an action and returns the state to move to. Returning the
// current state means "stay" (no transition occurs).
type Handler func() (State, error)

// AutoCheck is a post-transition predicate. When ok is true the machine
// immediately re-transitions to next without further input.
type AutoCheck func() (next State, ok bool)

// InvalidTransitionError reports an attempt to leave the declared
// transition set. The current state is unchanged.
type InvalidTransitionError struct {
	From    State
	To      State
	Allowed []State // sorted
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("flow: illegal transition %s -> %s (allowed: %v)", e.From, e.To, e.Allowed)
}

// UnrecognizedInputError reports a token with no mapping in the current
// state. Valid lists the tokens the state does accept, sorted, for help
// text.
type UnrecognizedInputError struct {
	State State
	Token string
	Valid []string
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("flow: state %s does not accept %q (valid: %s)", e.State, e.Token, strings.Join(e.Valid, ", "))
}

// Machine owns the current-state value. It is single-threaded by design;
// transitions and dispatch run to completion.
type Machine struct {
	table    map[State]StateSpec
	handlers map[ActionID]Handler
	auto     map[State]AutoCheck
	current  State
}

// NewMachine builds a machine from a state table, starting in initial.
// Every transition target and the initial state must be rows of the table.
func NewMachine(initial State, table map[State]StateSpec) (*Machine, error) {
	if _, ok := table[initial]; !ok {
		return nil, fmt.Errorf("flow: initial state %s not in table", initial)
	}
	for from, spec := range table {
		for to := range spec.Transitions {
			if _, ok := table[to]; !ok {
				return nil, fmt.Errorf("flow: state %s allows transition to unknown state %s", from, to)
			}
		}
	}
	return &Machine{
		table:    table,
		handlers: make(map[ActionID]Handler),
		auto:     make(map[State]AutoCheck),
		current:  initial,
	}, nil
}

// RegisterHandler binds an action ID to its handler.
func (m *Machine) RegisterHandler(id ActionID, h Handler) {
	m.handlers[id] = h
}

// RegisterAutoCheck binds a post-transition predicate to a state.
func (m *Machine) RegisterAutoCheck(s State, check AutoCheck) {
	m.auto[s] = check
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// AllowedTransitions returns the sorted transition set of a state.
func (m *Machine) AllowedTransitions(s State) []State {
	spec, ok := m.table[s]
	if !ok {
		return nil
	}
	out := make([]State, 0, len(spec.Transitions))
	for to := range spec.Transitions {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidInputs returns the sorted tokens a state accepts.
func (m *Machine) ValidInputs(s State) []string {
	spec, ok := m.table[s]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(spec.Inputs))
	for tok := range spec.Inputs {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// TransitionTo moves to target if the current state allows it, then runs the
// auto-advance pass. On failure the current state is untouched.
func (m *Machine) TransitionTo(target State) error {
	if err := m.transitionOnce(target); err != nil {
		return err
	}
	return m.autoAdvance()
}

// transitionOnce performs a single validated transition without the
// auto-advance pass. target == current is a no-op stay.
func (m *Machine) transitionOnce(target State) error {
	if target == m.current {
		return nil
	}
	spec := m.table[m.current]
	if !spec.Transitions[target] {
		return &InvalidTransitionError{
			From:    m.current,
			To:      target,
			Allowed: m.AllowedTransitions(m.current),
		}
	}
	m.current = target
	return nil
}

// autoAdvance runs state predicates until none fires. Predicates are
// idempotent by contract; the bound only guards against a miswired table
// forming a cycle.
func (m *Machine) autoAdvance() error {
	const maxHops = 4
	for i := 0; i < maxHops; i++ {
		check, ok := m.auto[m.current]
		if !ok {
			return nil
		}
		next, fire := check()
		if !fire || next == m.current {
			return nil
		}
		if err := m.transitionOnce(next); err != nil {
			return err
		}
	}
	return fmt.Errorf("flow: auto-advance did not settle after %d hops from %s", maxHops, m.current)
}

// Normalize canonicalizes a raw input token for the given state: trim,
// case-fold, and fold empty/enter variants into ConfirmToken when the state
// accepts empty input.
func (m *Machine) Normalize(s State, raw string) string {
	tok := strings.ToLower(strings.TrimSpace(raw))
	if m.table[s].AcceptsEmpty {
		switch tok {
		case "", "enter", "\n", "\r":
			return ConfirmToken
		}
	}
	return tok
}

// ProcessInput normalizes a raw token, dispatches the mapped action, and
// transitions to the state the handler returns. Unknown tokens fail with
// the state's valid-token list; handler errors propagate with no
// transition.
func (m *Machine) ProcessInput(raw string) error {
	state := m.current
	tok := m.Normalize(state, raw)

	actionID, ok := m.table[state].Inputs[tok]
	if !ok {
		return &UnrecognizedInputError{
			State: state,
			Token: tok,
			Valid: m.ValidInputs(state),
		}
	}

	handler, ok := m.handlers[actionID]
	if !ok {
		return fmt.Errorf("flow: state %s maps %q to unregistered action %s", state, tok, actionID)
	}

	next, err := handler()
	if err != nil {
		return err
	}
	if err := m.transitionOnce(next); err != nil {
		return err
	}
	return m.autoAdvance()
}
