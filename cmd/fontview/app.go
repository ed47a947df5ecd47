package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fontview/asset"
	"github.com/lixenwraith/fontview/audio"
	"github.com/lixenwraith/fontview/catalog"
	"github.com/lixenwraith/fontview/config"
	"github.com/lixenwraith/fontview/display"
	"github.com/lixenwraith/fontview/engine"
	"github.com/lixenwraith/fontview/input"
	"github.com/lixenwraith/fontview/service"
)

// app wires the previewer: assets, catalog, services and the frame loop state
type app struct {
	ctx   *engine.Context
	term  *display.Terminal
	click *audio.Clicker
	hub   *service.Hub
	keys  *input.KeyTable

	repeats input.RepeatFilter
	latch   input.Latch
	resized bool
}

// newApp runs the loading and preparing phases against screen
// The screen is not entered until start
func newApp(cfg config.Config, screen tcell.Screen) (*app, error) {
	manifest, err := asset.LoadManifest(cfg.Assets.Manifest)
	if err != nil {
		return nil, err
	}
	lib := asset.NewLibrary(cfg.Assets.Root, manifest, cfg.Assets.Fallback)

	ctx := engine.NewContext(nil)
	if err := ctx.Load(lib); err != nil {
		return nil, err
	}

	entries, order, err := cfg.CatalogEntries()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(entries, order)
	if err != nil {
		return nil, err
	}
	if err := ctx.Prepare(cat); err != nil {
		return nil, err
	}

	keys, err := input.BuildKeyTable(cfg.Bindings())
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	opts, err := cfg.DisplayOptions()
	if err != nil {
		return nil, err
	}

	a := &app{
		ctx:   ctx,
		term:  display.NewTerminal(screen, lib, opts),
		click: audio.NewClicker(cfg.Click()),
		hub:   service.NewHub(),
		keys:  keys,

		repeats: input.RepeatFilter{Window: cfg.Input.RepeatWindow},
	}
	for _, svc := range []service.Service{a.term, a.click} {
		if err := a.hub.Register(svc); err != nil {
			return nil, err
		}
	}
	if err := ctx.AttachSurface(a.term); err != nil {
		return nil, err
	}
	ctx.OnTransition = func(int) { a.click.Click() }
	return a, nil
}

// start brings up services and draws font 0
func (a *app) start() error {
	if err := a.hub.InitAll(); err != nil {
		return err
	}
	if err := a.hub.StartAll(); err != nil {
		return err
	}
	a.ctx.Evaluate(engine.SignalRefresh)
	return nil
}

func (a *app) stop() {
	a.hub.StopAll()
	if n := a.latch.Dropped(); n > 0 {
		log.Printf("dropped %d same-frame presses", n)
	}
	if n := a.repeats.Dropped(); n > 0 {
		log.Printf("dropped %d key repeats", n)
	}
}

// handleEvent feeds one terminal event into the latch; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act := a.keys.Lookup(ev)
		if act == input.ActionQuit {
			return false
		}
		fresh := a.repeats.Accept(ev)
		if act == input.ActionNone || !fresh {
			return true
		}
		a.latch.Press(act)
	case *tcell.EventResize:
		a.term.Sync()
		a.resized = true
	}
	return true
}

// tick is one evaluation cycle; reports whether the surface was redrawn
func (a *app) tick() bool {
	sig := signalFor(a.latch.Take())
	if sig == engine.SignalNone && a.resized {
		sig = engine.SignalRefresh
	}
	drawn := a.ctx.Evaluate(sig)
	if drawn {
		a.resized = false
	}
	return drawn
}

// loop runs until quit or until events closes
func (a *app) loop(events <-chan tcell.Event, ticks <-chan time.Time) {
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticks:
			a.tick()
		}
	}
}

func signalFor(act input.Action) engine.Signal {
	switch act {
	case input.ActionNext:
		return engine.SignalNext
	case input.ActionPrevious:
		return engine.SignalPrevious
	case input.ActionRefresh:
		return engine.SignalRefresh
	default:
		return engine.SignalNone
	}
}
