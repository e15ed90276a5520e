//go:build !cgo

package hal

import "fmt"

func RunWindow(_ Handler) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
