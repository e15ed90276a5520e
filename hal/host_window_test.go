//go:build cgo

package hal

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// gameHandler records what hostGame dispatches and closes on request.
type gameHandler struct {
	activations int
	events      []Event
	err         error
}

func (h *gameHandler) Activate(EventLoop) error {
	h.activations++
	return h.err
}

func (h *gameHandler) WindowEvent(loop EventLoop, ev Event) {
	h.events = append(h.events, ev)
	if ev.Kind == EventCloseRequested {
		loop.Exit()
	}
}

func newTestGame(h Handler) *hostGame {
	return &hostGame{
		h:       h,
		backend: &ebitenBackend{},
		closing: func() bool { return false },
		scale:   func() float64 { return 1 },
	}
}

func TestHostGameFirstUpdateActivates(t *testing.T) {
	h := &gameHandler{}
	g := newTestGame(h)

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if h.activations != 1 {
		t.Fatalf("activations = %d, want 1", h.activations)
	}
}

func TestHostGameActivateErrorStops(t *testing.T) {
	want := errors.New("no display")
	h := &gameHandler{err: want}
	g := newTestGame(h)

	if err := g.Update(); !errors.Is(err, want) {
		t.Fatalf("Update() = %v, want %v", err, want)
	}
	if err := g.Update(); !errors.Is(err, want) {
		t.Fatalf("second Update() = %v, want %v", err, want)
	}
	if h.activations != 1 {
		t.Fatalf("activations = %d, want 1", h.activations)
	}
}

func TestHostGameCloseTerminates(t *testing.T) {
	h := &gameHandler{}
	g := newTestGame(h)
	closing := false
	g.closing = func() bool { return closing }

	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	closing = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, want ebiten.Termination", err)
	}
	if len(h.events) != 1 || h.events[0].Kind != EventCloseRequested {
		t.Fatalf("events = %v, want one close-requested", h.events)
	}

	g.win = &hostWindow{pending: true}
	g.Draw(nil)
	g.Layout(10, 10)
	if len(h.events) != 1 {
		t.Fatalf("events after exit = %v", h.events)
	}
}

func TestHostGameExit(t *testing.T) {
	g := newTestGame(&gameHandler{})
	g.Exit()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, want ebiten.Termination", err)
	}
}

func TestHostGameDrawConsumesPending(t *testing.T) {
	h := &gameHandler{}
	g := newTestGame(h)

	g.Draw(nil)
	if len(h.events) != 0 {
		t.Fatalf("Draw without a window dispatched %v", h.events)
	}

	g.win = &hostWindow{width: 4, height: 4}
	g.Draw(nil)
	if len(h.events) != 0 {
		t.Fatalf("Draw without a pending redraw dispatched %v", h.events)
	}

	g.win.RequestRedraw()
	g.win.RequestRedraw()
	g.Draw(nil)
	g.Draw(nil)
	if len(h.events) != 1 || h.events[0].Kind != EventRedrawRequested {
		t.Fatalf("events = %v, want one redraw-requested", h.events)
	}
	if g.win.pending {
		t.Fatal("pending redraw not consumed")
	}
	if g.backend.screen != nil {
		t.Fatal("screen still bound after Draw")
	}
}

func TestHostGameLayoutResize(t *testing.T) {
	h := &gameHandler{}
	g := newTestGame(h)
	g.scale = func() float64 { return 2 }

	if w, ht := g.Layout(400, 300); w != 800 || ht != 600 {
		t.Fatalf("Layout(400, 300) = %d, %d, want 800, 600", w, ht)
	}
	if len(h.events) != 0 {
		t.Fatalf("Layout before the window exists dispatched %v", h.events)
	}

	g.win = &hostWindow{width: g.outW, height: g.outH}
	g.Layout(400, 300)
	if len(h.events) != 0 {
		t.Fatalf("unchanged Layout dispatched %v", h.events)
	}

	g.Layout(500, 250)
	want := Event{Kind: EventResized, Width: 1000, Height: 500}
	if len(h.events) != 1 || h.events[0] != want {
		t.Fatalf("events = %v, want [%v]", h.events, want)
	}
	if w, ht := g.win.InnerSize(); w != 1000 || ht != 500 {
		t.Fatalf("InnerSize() = %d, %d, want 1000, 500", w, ht)
	}
}

func TestEbitenBackendPresentWithoutScreen(t *testing.T) {
	b := &ebitenBackend{}
	if err := b.present(&Frame{}); !errors.Is(err, ErrNoScreen) {
		t.Fatalf("present() = %v, want ErrNoScreen", err)
	}
}
