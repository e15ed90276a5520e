package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidSize is returned when a surface is resized outside [1, MaxSurfaceDimension].
	ErrInvalidSize = errors.New("invalid surface size")

	// ErrNoScreen is returned when a frame is presented while no screen is bound.
	ErrNoScreen = errors.New("no screen to present to")
)

// MaxSurfaceDimension is the largest width or height a Surface accepts.
const MaxSurfaceDimension = 65535

// Window is a platform-native window.
type Window interface {
	// InnerSize reports the drawable area in physical pixels.
	InnerSize() (width, height int)
	// RequestRedraw schedules an EventRedrawRequested. Requests coalesce.
	RequestRedraw()
}

// Context connects a window to the presentation backend.
type Context interface {
	Window() Window
}

// Surface is a resizable pixel buffer bound to a window and a context.
type Surface interface {
	Resize(width, height int) error
	// BufferMut returns the frame to fill for the next present. Its size
	// matches the last successful Resize.
	BufferMut() (*Frame, error)
}

// EventKind identifies a platform event.
type EventKind uint8

const (
	EventOther EventKind = iota
	EventActivate
	EventCloseRequested
	EventResized
	EventRedrawRequested
)

func (k EventKind) String() string {
	switch k {
	case EventActivate:
		return "activate"
	case EventCloseRequested:
		return "close-requested"
	case EventResized:
		return "resized"
	case EventRedrawRequested:
		return "redraw-requested"
	default:
		return "other"
	}
}

// Event is a window event. Width and Height are set for EventResized.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
}

// EventLoop is the running platform event source as seen from a Handler.
type EventLoop interface {
	CreateWindow(title string) (Window, error)
	NewContext(w Window) (Context, error)
	NewSurface(c Context, w Window) (Surface, error)
	// Exit stops the loop once the current handler returns.
	// No further events are delivered.
	Exit()
}

// Handler receives platform events one at a time on the loop goroutine.
type Handler interface {
	// Activate is called on startup and on every resume.
	// A non-nil error stops the loop and is returned from it.
	Activate(loop EventLoop) error
	WindowEvent(loop EventLoop, ev Event)
}
