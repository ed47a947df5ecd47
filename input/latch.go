package input

// Latch holds at most one action per evaluation cycle
// The first press of a cycle wins; later presses in the same cycle are dropped
type Latch struct {
	pending Action
	dropped int
}

// Press records a; ignored if a is ActionNone or an action is already pending
func (l *Latch) Press(a Action) {
	if a == ActionNone {
		return
	}
	if l.pending != ActionNone {
		l.dropped++
		return
	}
	l.pending = a
}

// Take returns the pending action and clears the latch
func (l *Latch) Take() Action {
	a := l.pending
	l.pending = ActionNone
	return a
}

// Dropped returns how many presses were discarded since creation
func (l *Latch) Dropped() int {
	return l.dropped
}
