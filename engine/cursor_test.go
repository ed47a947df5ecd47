package engine

import "testing"

func TestCursorInverse(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for p := 0; p < n; p++ {
			c := NewCursor(n)
			for c.Position() != p {
				c.Advance()
			}

			c.Advance()
			c.Retreat()
			if c.Position() != p {
				t.Errorf("n=%d: advance then retreat from %d gave %d", n, p, c.Position())
			}

			c.Retreat()
			c.Advance()
			if c.Position() != p {
				t.Errorf("n=%d: retreat then advance from %d gave %d", n, p, c.Position())
			}
		}
	}
}

func TestCursorSingleEntryIdentity(t *testing.T) {
	c := NewCursor(1)
	c.Advance()
	if c.Position() != 0 {
		t.Errorf("Advance on n=1 moved to %d", c.Position())
	}
	c.Retreat()
	if c.Position() != 0 {
		t.Errorf("Retreat on n=1 moved to %d", c.Position())
	}
}

func TestCursorWraparound13(t *testing.T) {
	c := NewCursor(13)

	c.Apply(SignalPrevious)
	if c.Position() != 12 {
		t.Fatalf("previous from 0 = %d, want 12", c.Position())
	}
	c.Apply(SignalNext)
	if c.Position() != 0 {
		t.Fatalf("next from 12 = %d, want 0", c.Position())
	}

	for i := 0; i < 12; i++ {
		c.Advance()
	}
	if c.Position() != 12 {
		t.Fatalf("expected last position, got %d", c.Position())
	}
	c.Apply(SignalNext)
	if c.Position() != 0 {
		t.Errorf("next from last = %d, want 0", c.Position())
	}
}

func TestCursorBounded(t *testing.T) {
	c := NewCursor(7)
	seq := []Signal{SignalPrevious, SignalPrevious, SignalNext, SignalRefresh, SignalNone, SignalPrevious}
	for i := 0; i < 200; i++ {
		c.Apply(seq[i%len(seq)])
		if c.Position() < 0 || c.Position() >= c.Len() {
			t.Fatalf("position %d escaped [0,%d)", c.Position(), c.Len())
		}
	}
}

func TestCursorApplyNonMoving(t *testing.T) {
	c := NewCursor(5)
	if c.Apply(SignalRefresh) || c.Apply(SignalNone) {
		t.Error("Refresh or None reported a transition")
	}
	if c.Position() != 0 {
		t.Errorf("position changed to %d", c.Position())
	}
}

func TestNewCursorPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCursor(0) did not panic")
		}
	}()
	NewCursor(0)
}
