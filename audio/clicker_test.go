package audio

import (
	"testing"
	"time"
)

func TestDisabledClickerIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewClicker(cfg)

	if err := c.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if c.Ready() {
		t.Error("disabled clicker reports ready")
	}
	// Must not touch the speaker
	c.Click()
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestToneLength(t *testing.T) {
	c := NewClicker(DefaultConfig())
	s, err := c.tone()
	if err != nil {
		t.Fatalf("tone failed: %v", err)
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sampleRate.N(50 * time.Millisecond); total != want {
		t.Errorf("tone has %d samples, want %d", total, want)
	}
}

func TestInvalidToneDisablesClicker(t *testing.T) {
	for name, cfg := range map[string]Config{
		"above nyquist": {Enabled: true, Frequency: 30000, Duration: time.Millisecond},
		"zero duration": {Enabled: true, Frequency: 440},
	} {
		c := NewClicker(cfg)
		if _, err := c.tone(); err == nil {
			t.Errorf("%s: tone accepted", name)
		}
		if err := c.Init(); err != nil {
			t.Errorf("%s: Init returned %v", name, err)
		}
		if c.Ready() {
			t.Errorf("%s: clicker ready", name)
		}
	}
}
