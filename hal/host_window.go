//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// RunWindow opens a desktop window and dispatches its events to h.
// It blocks until h calls Exit or Activate fails.
func RunWindow(h Handler) error {
	g := &hostGame{
		h:       h,
		backend: &ebitenBackend{},
		closing: ebiten.IsWindowBeingClosed,
		scale:   func() float64 { return ebiten.Monitor().DeviceScaleFactor() },
	}

	ebiten.SetWindowSize(defaultWindowWidth, defaultWindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       Handler
	backend *ebitenBackend

	// closing and scale read window state from ebiten.
	closing func() bool
	scale   func() float64

	win       *hostWindow
	activated bool
	exited    bool
	err       error

	outW int
	outH int
}

func (g *hostGame) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.exited {
		return ebiten.Termination
	}
	if !g.activated {
		g.activated = true
		if err := g.h.Activate(g); err != nil {
			g.err = err
			return err
		}
	}
	if g.closing != nil && g.closing() {
		g.h.WindowEvent(g, Event{Kind: EventCloseRequested})
	}
	if g.exited {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.exited || g.win == nil || !g.win.pending {
		return
	}
	g.win.pending = false

	g.backend.screen = screen
	defer func() { g.backend.screen = nil }()
	g.h.WindowEvent(g, Event{Kind: EventRedrawRequested})
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if g.scale != nil {
		scale = g.scale()
	}
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if w == g.outW && h == g.outH {
		return w, h
	}
	g.outW, g.outH = w, h
	if g.win != nil {
		g.win.width, g.win.height = w, h
		if !g.exited {
			g.h.WindowEvent(g, Event{Kind: EventResized, Width: w, Height: h})
		}
	}
	return w, h
}

func (g *hostGame) Exit() { g.exited = true }

func (g *hostGame) CreateWindow(title string) (Window, error) {
	if g.win != nil {
		return nil, errors.New("create window: ebiten supports a single window")
	}
	ebiten.SetWindowTitle(title)
	g.win = &hostWindow{width: g.outW, height: g.outH}
	return g.win, nil
}

func (g *hostGame) NewContext(w Window) (Context, error) {
	if w == nil || w != Window(g.win) {
		return nil, errors.New("new context: unknown window")
	}
	return &hostContext{win: g.win}, nil
}

func (g *hostGame) NewSurface(c Context, w Window) (Surface, error) {
	if c == nil || w == nil || c.Window() != w {
		return nil, errors.New("new surface: context and window do not match")
	}
	return newHostSurface(g.backend), nil
}

type hostWindow struct {
	width   int
	height  int
	pending bool
}

func (w *hostWindow) InnerSize() (int, int) { return w.width, w.height }
func (w *hostWindow) RequestRedraw()        { w.pending = true }

type hostContext struct {
	win *hostWindow
}

func (c *hostContext) Window() Window { return c.win }

// ebitenBackend uploads frames into a surface-sized image and draws it onto
// the screen handed to Draw.
type ebitenBackend struct {
	screen *ebiten.Image
	img    *ebiten.Image
	rgba   []byte
}

func (b *ebitenBackend) resize(width, height int) error {
	if b.img != nil {
		bounds := b.img.Bounds()
		if bounds.Dx() == width && bounds.Dy() == height {
			return nil
		}
		b.img.Deallocate()
	}
	b.img = ebiten.NewImage(width, height)
	return nil
}

func (b *ebitenBackend) acquire() error {
	if b.img == nil {
		return errors.New("surface has no backing image")
	}
	return nil
}

func (b *ebitenBackend) present(f *Frame) error {
	if b.screen == nil {
		return ErrNoScreen
	}
	bounds := b.img.Bounds()
	if bounds.Dx() != f.width || bounds.Dy() != f.height {
		return errors.New("frame does not match surface size")
	}
	b.rgba = argbToRGBA(b.rgba, f.pix)
	b.img.WritePixels(b.rgba)
	b.screen.DrawImage(b.img, nil)
	return nil
}
