package hal

import (
	"context"
	"errors"
)

// HeadlessConfig controls the no-window event source.
//
// The *Err hooks receive the 1-based call count for that operation; a non-nil
// return fails the call.
type HeadlessConfig struct {
	Width  int
	Height int

	CreateWindowErr func(n int) error
	NewContextErr   func(n int) error
	NewSurfaceErr   func(n int) error
	ResizeErr       func(n int) error
	AcquireErr      func(n int) error
	PresentErr      func(n int) error
}

// HeadlessStats counts platform calls made through a Headless loop.
type HeadlessStats struct {
	Windows  int
	Contexts int
	Surfaces int
	Resizes  int
	Acquires int
	Presents int
}

// Headless is an in-memory EventLoop. Events are scripted through Run.
type Headless struct {
	cfg    HeadlessConfig
	win    *headlessWindow
	exited bool
	stats  HeadlessStats

	delivered []Event

	lastW   int
	lastH   int
	lastPix []uint32
}

// NewHeadless returns a loop whose windows start at cfg.Width x cfg.Height.
func NewHeadless(cfg HeadlessConfig) *Headless {
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	return &Headless{cfg: cfg}
}

// Run delivers events to h in order, followed by any redraw the handler
// requested. It stops after Exit, on a handler activation error or when ctx
// is done.
func (hl *Headless) Run(ctx context.Context, h Handler, events []Event) error {
	for _, ev := range events {
		if hl.exited {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := hl.dispatch(h, ev); err != nil {
			return err
		}
		hl.flushRedraw(h)
	}
	return nil
}

func (hl *Headless) dispatch(h Handler, ev Event) error {
	hl.delivered = append(hl.delivered, ev)
	switch ev.Kind {
	case EventActivate:
		return h.Activate(hl)
	case EventResized:
		if hl.win != nil {
			hl.win.width = ev.Width
			hl.win.height = ev.Height
		}
	case EventRedrawRequested:
		if hl.win != nil {
			hl.win.pending = false
		}
	}
	h.WindowEvent(hl, ev)
	return nil
}

func (hl *Headless) flushRedraw(h Handler) {
	if hl.exited || hl.win == nil || !hl.win.pending {
		return
	}
	hl.win.pending = false
	ev := Event{Kind: EventRedrawRequested}
	hl.delivered = append(hl.delivered, ev)
	h.WindowEvent(hl, ev)
}

// Exit stops the loop; events still queued in Run are dropped.
func (hl *Headless) Exit() { hl.exited = true }

// Exited reports whether Exit was called.
func (hl *Headless) Exited() bool { return hl.exited }

// Delivered returns the events dispatched so far, including redraws the
// loop synthesized.
func (hl *Headless) Delivered() []Event {
	return append([]Event(nil), hl.delivered...)
}

// Stats returns call counters.
func (hl *Headless) Stats() HeadlessStats { return hl.stats }

// LastFrame returns a copy of the most recently presented pixels.
func (hl *Headless) LastFrame() (width, height int, pix []uint32) {
	return hl.lastW, hl.lastH, append([]uint32(nil), hl.lastPix...)
}

func (hl *Headless) CreateWindow(title string) (Window, error) {
	hl.stats.Windows++
	if err := hookErr(hl.cfg.CreateWindowErr, hl.stats.Windows); err != nil {
		return nil, err
	}
	hl.win = &headlessWindow{title: title, width: hl.cfg.Width, height: hl.cfg.Height}
	return hl.win, nil
}

func (hl *Headless) NewContext(w Window) (Context, error) {
	hl.stats.Contexts++
	if err := hookErr(hl.cfg.NewContextErr, hl.stats.Contexts); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errors.New("new context: nil window")
	}
	return &headlessContext{win: w}, nil
}

func (hl *Headless) NewSurface(c Context, w Window) (Surface, error) {
	hl.stats.Surfaces++
	if err := hookErr(hl.cfg.NewSurfaceErr, hl.stats.Surfaces); err != nil {
		return nil, err
	}
	if c == nil || w == nil {
		return nil, errors.New("new surface: nil context or window")
	}
	if c.Window() != w {
		return nil, errors.New("new surface: context bound to another window")
	}
	return newHostSurface(headlessBackend{hl: hl}), nil
}

func hookErr(fn func(int) error, n int) error {
	if fn == nil {
		return nil
	}
	return fn(n)
}

type headlessWindow struct {
	title   string
	width   int
	height  int
	pending bool
}

func (w *headlessWindow) InnerSize() (int, int) { return w.width, w.height }
func (w *headlessWindow) RequestRedraw()        { w.pending = true }

// Title returns the title the window was created with.
func (w *headlessWindow) Title() string { return w.title }

type headlessContext struct {
	win Window
}

func (c *headlessContext) Window() Window { return c.win }

type headlessBackend struct {
	hl *Headless
}

func (b headlessBackend) resize(width, height int) error {
	b.hl.stats.Resizes++
	return hookErr(b.hl.cfg.ResizeErr, b.hl.stats.Resizes)
}

func (b headlessBackend) acquire() error {
	b.hl.stats.Acquires++
	return hookErr(b.hl.cfg.AcquireErr, b.hl.stats.Acquires)
}

func (b headlessBackend) present(f *Frame) error {
	b.hl.stats.Presents++
	if err := hookErr(b.hl.cfg.PresentErr, b.hl.stats.Presents); err != nil {
		return err
	}
	b.hl.lastW = f.width
	b.hl.lastH = f.height
	b.hl.lastPix = append(b.hl.lastPix[:0], f.pix...)
	return nil
}
