package eyes

import "errors"

var (
	// ErrInvalidFrameRate is returned for a frame rate of zero or less.
	ErrInvalidFrameRate = errors.New("frame rate must be positive")

	// ErrInvalidScreen is returned when the surface has no area.
	ErrInvalidScreen = errors.New("screen size must be positive")

	// ErrNilRenderer is returned when New is called without a renderer.
	ErrNilRenderer = errors.New("renderer is required")
)
