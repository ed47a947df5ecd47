package engine

import (
	"fmt"
	"time"
)

// Phase is the application lifecycle stage
type Phase uint8

const (
	// PhaseLoading resolves asset keys to sheets
	PhaseLoading Phase = iota
	// PhasePreparing builds the catalog, handle table and cursor
	PhasePreparing
	// PhaseRunning answers input signals
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhasePreparing:
		return "Preparing"
	case PhaseRunning:
		return "Running"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PhaseMachine is a forward-only three state machine
// Loading -> Preparing -> Running, one step at a time
type PhaseMachine struct {
	clock   Clock
	current Phase
	entered [PhaseRunning + 1]time.Time
}

// NewPhaseMachine starts in PhaseLoading
func NewPhaseMachine(clock Clock) *PhaseMachine {
	if clock == nil {
		clock = SystemClock{}
	}
	m := &PhaseMachine{clock: clock, current: PhaseLoading}
	m.entered[PhaseLoading] = clock.Now()
	return m
}

// Current returns the active phase
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// CanTransition checks if a phase transition is valid
func (m *PhaseMachine) CanTransition(from, to Phase) bool {
	validTransitions := map[Phase]Phase{
		PhaseLoading:   PhasePreparing,
		PhasePreparing: PhaseRunning,
	}
	next, ok := validTransitions[from]
	return ok && next == to
}

// Transition moves to the next phase
// Returns false and leaves state unchanged if the step is not allowed
func (m *PhaseMachine) Transition(to Phase) bool {
	if !m.CanTransition(m.current, to) {
		return false
	}
	m.current = to
	m.entered[to] = m.clock.Now()
	return true
}

// Complete reports whether the machine has moved past p
// Running is never complete
func (m *PhaseMachine) Complete(p Phase) bool {
	return m.current > p
}

// Entered returns when p was entered; zero if it has not been reached
func (m *PhaseMachine) Entered(p Phase) time.Time {
	if p > PhaseRunning {
		return time.Time{}
	}
	return m.entered[p]
}
