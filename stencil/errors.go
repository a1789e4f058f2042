package stencil

import "errors"

// Sentinel errors for stencil operations.
var (
	// ErrTooFewPoints indicates the grid is too small to carry the
	// requested stencil (spacing undefined, or a boundary row would
	// reach past the matrix).
	ErrTooFewPoints = errors.New("stencil: too few grid points for the requested stencil")
)
