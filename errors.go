package go_bloom

import "errors"

var (
	// ErrInvalidArgument rejects nil collaborators, out-of-range parameters
	// and incompatible structures.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrImmutable rejects mutating calls on immutable wrappers.
	ErrImmutable = errors.New("immutable")
)
