package hal

import "fmt"

// surfaceBackend is the platform half of a Surface.
type surfaceBackend interface {
	resize(width, height int) error
	acquire() error
	present(f *Frame) error
}

// Frame is the write target for one present.
//
// Pixels are packed 0xAARRGGBB in row-major order and len(Pixels()) is
// always Width()*Height().
type Frame struct {
	width  int
	height int
	pix    []uint32
	b      surfaceBackend
}

func (f *Frame) Width() int       { return f.width }
func (f *Frame) Height() int      { return f.height }
func (f *Frame) Pixels() []uint32 { return f.pix }

// Present makes the frame visible. This is the only point where pixels
// reach the screen.
func (f *Frame) Present() error {
	if f.b == nil {
		return ErrNoScreen
	}
	return f.b.present(f)
}

type hostSurface struct {
	width  int
	height int
	buf    []uint32
	frame  Frame
	b      surfaceBackend
}

func newHostSurface(b surfaceBackend) *hostSurface {
	return &hostSurface{b: b}
}

func (s *hostSurface) Resize(width, height int) error {
	if width < 1 || height < 1 || width > MaxSurfaceDimension || height > MaxSurfaceDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := s.b.resize(width, height); err != nil {
		return err
	}
	if width == s.width && height == s.height {
		return nil
	}
	n := width * height
	if cap(s.buf) >= n {
		s.buf = s.buf[:n]
	} else {
		s.buf = make([]uint32, n)
	}
	s.width = width
	s.height = height
	return nil
}

func (s *hostSurface) BufferMut() (*Frame, error) {
	if s.width == 0 || s.height == 0 {
		return nil, fmt.Errorf("%w: surface not sized", ErrInvalidSize)
	}
	if err := s.b.acquire(); err != nil {
		return nil, err
	}
	s.frame = Frame{width: s.width, height: s.height, pix: s.buf, b: s.b}
	return &s.frame, nil
}
