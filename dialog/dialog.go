// Package dialog defines the finite-state machines behind the guided
// multi-turn forms. Each dialog kind is a declarative Chain: a strict linear
// chain of steps mapping (state) -> (validator, field name, next state), all
// consumed by one generic transition executor. The executor is pure; it
// never touches sessions or stores, so every chain is testable in isolation
// and no per-state handler logic is duplicated.
package dialog

import (
	"fmt"

	"github.com/Ilya-36/planbot/core"
)

// OutcomeKind classifies the result of one transition.
type OutcomeKind int

const (
	// OutcomeRetry means validation failed: the dialog self-loops in the
	// same state and the user may retry indefinitely.
	OutcomeRetry OutcomeKind = iota
	// OutcomeAdvance means the field was accepted and the dialog moved to
	// the next state in the chain.
	OutcomeAdvance
	// OutcomeComplete means the last field was accepted: all required
	// fields are now collected and the record can be committed.
	OutcomeComplete
)

// Outcome is the decision produced by one transition. For Advance and
// Complete, Field/Value carry the freshly validated value; for Retry they
// are empty and the session must stay untouched. Reply is the next prompt
// (Advance) or the format guidance (Retry); the commit confirmation for
// Complete is assembled by the caller, which owns the stores.
type Outcome struct {
	Kind  OutcomeKind
	State core.DialogState
	Field string
	Value interface{}
	Reply string
}

// Step is one state of a dialog chain. Prompt is asked when the step
// becomes active; Retry is the guidance emitted on validation failure.
// Parse follows the validator contract: Ok(value) | Err(reason).
type Step struct {
	State  core.DialogState
	Field  string
	Prompt string
	Retry  string
	Parse  func(raw string) (interface{}, error)
}

// Chain is the full linear chain for one dialog kind.
type Chain struct {
	Kind  core.DialogKind
	Steps []Step
}

// First returns the entry step of the chain.
func (s Chain) First() Step { return s.Steps[0] }

// Transition runs the state's validator against the raw text and decides
// the next state. It returns an error only for a state that does not belong
// to this chain, which indicates protocol misuse by the caller.
func (s Chain) Transition(state core.DialogState, raw string) (Outcome, error) {
	idx := -1
	for i, step := range s.Steps {
		if step.State == state {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Outcome{}, fmt.Errorf("dialog %s has no state %s: %w", s.Kind, state, core.ErrNoActiveDialog)
	}

	step := s.Steps[idx]
	value, err := step.Parse(raw)
	if err != nil {
		return Outcome{Kind: OutcomeRetry, State: state, Reply: step.Retry}, nil
	}

	if idx == len(s.Steps)-1 {
		return Outcome{Kind: OutcomeComplete, State: state, Field: step.Field, Value: value}, nil
	}

	next := s.Steps[idx+1]
	return Outcome{Kind: OutcomeAdvance, State: next.State, Field: step.Field, Value: value, Reply: next.Prompt}, nil
}
