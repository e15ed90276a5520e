package app

import (
	"fmt"

	"areyouok/hal"
)

// Session is the window, drawing context and presentation surface of the
// app. It is built whole by OpenSession or not at all.
type Session struct {
	Window  hal.Window
	Context hal.Context
	Surface hal.Surface
}

// OpenSession creates a window titled title, a context bound to it and a
// surface bound to both, in that order.
func OpenSession(loop hal.EventLoop, title string) (*Session, error) {
	win, err := loop.CreateWindow(title)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	ctx, err := loop.NewContext(win)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	surf, err := loop.NewSurface(ctx, win)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	return &Session{Window: win, Context: ctx, Surface: surf}, nil
}
