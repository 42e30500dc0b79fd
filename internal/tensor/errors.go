package tensor

import "errors"

// Domain errors for tensor construction.
var (
	// ErrNearNull indicates k^2 is too close to zero for the projector
	// to be defined.
	ErrNearNull = errors.New("tensor: k^2 too close to zero for projector definition")
)
