// Package render rasterizes the gradient frame on the CPU and presents it.
package render

import (
	"areyouok/hal"
)

// MaxDimension is the largest width or height a frame is drawn at.
const MaxDimension = hal.MaxSurfaceDimension

// PresentError reports a failed resize, buffer acquisition or present.
// The frame is skipped; nothing is retried.
type PresentError struct {
	Op  string
	Err error
}

func (e *PresentError) Error() string {
	return "present: " + e.Op + ": " + e.Err.Error()
}

func (e *PresentError) Unwrap() error { return e.Err }

// DrawFrame sizes surf to win, fills it with the gradient and presents it.
//
// A missing window or surface, or a window with a zero dimension, is not an
// error: nothing is drawn.
func DrawFrame(win hal.Window, surf hal.Surface) error {
	if win == nil || surf == nil {
		return nil
	}
	w, h := win.InnerSize()
	if w <= 0 || h <= 0 {
		return nil
	}
	w = clamp(w)
	h = clamp(h)

	if err := surf.Resize(w, h); err != nil {
		return &PresentError{Op: "resize", Err: err}
	}
	frame, err := surf.BufferMut()
	if err != nil {
		return &PresentError{Op: "buffer", Err: err}
	}
	FillGradient(frame.Pixels(), frame.Width(), frame.Height())
	if err := frame.Present(); err != nil {
		return &PresentError{Op: "present", Err: err}
	}
	return nil
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxDimension {
		return MaxDimension
	}
	return v
}
