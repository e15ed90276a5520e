package app

import (
	"areyouok/hal"
	"areyouok/render"
)

// Title is the window title.
const Title = "areyouOK"

type state uint8

const (
	stateUninitialized state = iota
	stateInitializing
	stateReady
	stateClosed
)

// Config wires the app's console output.
type Config struct {
	// Out receives notices (stdout).
	Out hal.Logger
	// Diag receives per-frame diagnostics (stderr).
	Diag hal.Logger
}

// App is the window lifecycle controller. It implements hal.Handler.
type App struct {
	out  hal.Logger
	diag hal.Logger

	state   state
	session *Session
}

// New returns an app that has not been activated yet.
func New(cfg Config) *App {
	if cfg.Out == nil {
		cfg.Out = hal.Discard
	}
	if cfg.Diag == nil {
		cfg.Diag = hal.Discard
	}
	return &App{out: cfg.Out, diag: cfg.Diag}
}

// Session returns the display session, or nil before the first activation
// succeeds.
func (a *App) Session() *Session { return a.session }

// Ready reports whether the session is open and the app has not closed.
func (a *App) Ready() bool { return a.state == stateReady }

// Activate opens the session on the first call and requests a redraw.
// Later calls only request a redraw.
func (a *App) Activate(loop hal.EventLoop) error {
	switch a.state {
	case stateUninitialized:
		a.state = stateInitializing
		s, err := OpenSession(loop, Title)
		if err != nil {
			a.state = stateUninitialized
			return err
		}
		a.session = s
		a.state = stateReady
	case stateReady:
	default:
		return nil
	}
	a.session.Window.RequestRedraw()
	return nil
}

// WindowEvent handles close, resize and redraw; other events are ignored.
func (a *App) WindowEvent(loop hal.EventLoop, ev hal.Event) {
	if a.state == stateClosed {
		return
	}
	if ev.Kind == hal.EventCloseRequested {
		a.out.WriteLineString("Window closed")
		a.state = stateClosed
		loop.Exit()
		return
	}
	if a.state != stateReady {
		return
	}
	switch ev.Kind {
	case hal.EventResized:
		a.session.Window.RequestRedraw()
	case hal.EventRedrawRequested:
		if err := render.DrawFrame(a.session.Window, a.session.Surface); err != nil {
			a.diag.WriteLineString("failed to draw frame: " + err.Error())
		}
	}
}
