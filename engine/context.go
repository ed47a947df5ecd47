package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/fontview/asset"
	"github.com/lixenwraith/fontview/catalog"
	"github.com/lixenwraith/fontview/display"
)

var (
	ErrNoSurface        = errors.New("engine: no display surface attached")
	ErrDuplicateSurface = errors.New("engine: display surface already attached")
	ErrPhase            = errors.New("engine: operation not valid in current phase")
	ErrHandleTable      = errors.New("engine: handle table does not match catalog")
)

// Loader resolves asset keys; implemented by asset.Library
type Loader interface {
	LoadAll() error
	Resolve(keys []string) ([]asset.Handle, error)
}

// Context owns the state of one previewer: phases, catalog, cursor, handle table, surface
// All methods run on the frame loop goroutine
type Context struct {
	Phases *PhaseMachine

	// OnTransition runs after each Next or Previous evaluation
	OnTransition func(position int)

	loader  Loader
	catalog *catalog.Catalog
	cursor  *Cursor
	handles []asset.Handle // handles[i] belongs to catalog.At(i)
	surface display.Surface
}

// NewContext creates a context in PhaseLoading
func NewContext(clock Clock) *Context {
	return &Context{Phases: NewPhaseMachine(clock)}
}

// AttachSurface registers the single render target
func (c *Context) AttachSurface(s display.Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	if c.surface != nil {
		return ErrDuplicateSurface
	}
	c.surface = s
	return nil
}

// Load runs the loading phase and moves to PhasePreparing
func (c *Context) Load(l Loader) error {
	if c.Phases.Current() != PhaseLoading {
		return fmt.Errorf("%w: load during %s", ErrPhase, c.Phases.Current())
	}
	if err := l.LoadAll(); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	c.loader = l
	c.Phases.Transition(PhasePreparing)
	return nil
}

// Prepare installs the catalog, builds the handle table in catalog order,
// places the cursor at 0 and moves to PhaseRunning
func (c *Context) Prepare(cat *catalog.Catalog) error {
	if c.Phases.Current() != PhasePreparing {
		return fmt.Errorf("%w: prepare during %s", ErrPhase, c.Phases.Current())
	}
	handles, err := c.loader.Resolve(cat.Keys())
	if err != nil {
		return fmt.Errorf("resolve catalog: %w", err)
	}
	if len(handles) != cat.Size() {
		return fmt.Errorf("%w: %d handles for %d entries", ErrHandleTable, len(handles), cat.Size())
	}

	c.catalog = cat
	c.handles = handles
	c.cursor = NewCursor(cat.Size())
	c.Phases.Transition(PhaseRunning)
	log.Printf("catalog ready: %d fonts, %s order", cat.Size(), cat.Ordering())
	return nil
}

// Catalog returns the installed catalog, nil before Prepare
func (c *Context) Catalog() *catalog.Catalog {
	return c.catalog
}

// Position returns the cursor position, 0 before Prepare
func (c *Context) Position() int {
	if c.cursor == nil {
		return 0
	}
	return c.cursor.Position()
}

// Handle returns the handle for catalog index i
func (c *Context) Handle(i int) asset.Handle {
	return c.handles[i]
}

// Evaluate is the per-cycle apply and render step
// Unrecognized signals and phases before Running produce no surface calls
// Panics with ErrNoSurface when running without a surface
func (c *Context) Evaluate(sig Signal) bool {
	if !sig.Recognized() || c.Phases.Current() != PhaseRunning {
		return false
	}
	if c.surface == nil {
		panic(ErrNoSurface)
	}

	moved := c.cursor.Apply(sig)
	pos := c.cursor.Position()
	d := c.catalog.At(pos)

	c.surface.Clear()
	c.surface.SetActiveFont(c.handles[pos])
	for _, call := range Frame(d, pos) {
		c.surface.DrawText(call.At, call.Text, call.Color)
	}
	c.surface.Show()

	if moved {
		log.Printf("font %d: %s (%s)", pos, d.Name, d.AssetKey)
		if c.OnTransition != nil {
			c.OnTransition(pos)
		}
	}
	return true
}
