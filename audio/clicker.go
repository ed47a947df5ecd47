// Package audio plays the page-turn click.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Config controls the click tone
type Config struct {
	Enabled   bool
	Frequency float64       // Hz
	Duration  time.Duration // per click
}

// DefaultConfig returns a short 880 Hz tick
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Frequency: 880,
		Duration:  50 * time.Millisecond,
	}
}

// Clicker is the audio service
// A disabled or failed Clicker is silent; playback problems never stop the previewer
type Clicker struct {
	cfg Config

	mu    sync.Mutex
	ready bool
}

// NewClicker creates an uninitialized clicker
func NewClicker(cfg Config) *Clicker {
	return &Clicker{cfg: cfg}
}

// Name implements service.Service
func (c *Clicker) Name() string {
	return "audio"
}

// Init opens the speaker; failure is logged and leaves the clicker silent
func (c *Clicker) Init() error {
	if !c.cfg.Enabled {
		return nil
	}
	if _, err := c.tone(); err != nil {
		log.Printf("audio disabled: %v", err)
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, previewer can run without sound
		log.Printf("audio initialization failed: %v", err)
		return nil
	}
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	return nil
}

func (c *Clicker) Start() error {
	return nil
}

// Stop closes the speaker; safe to call more than once
func (c *Clicker) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		speaker.Close()
		c.ready = false
	}
	return nil
}

// Ready reports whether clicks are audible
func (c *Clicker) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Click plays one tone without blocking
func (c *Clicker) Click() {
	if !c.Ready() {
		return
	}
	s, err := c.tone()
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *Clicker) tone() (beep.Streamer, error) {
	if c.cfg.Duration <= 0 {
		return nil, fmt.Errorf("click duration %v", c.cfg.Duration)
	}
	sine, err := generators.SineTone(sampleRate, c.cfg.Frequency)
	if err != nil {
		return nil, fmt.Errorf("click tone: %w", err)
	}
	return beep.Take(sampleRate.N(c.cfg.Duration), sine), nil
}
