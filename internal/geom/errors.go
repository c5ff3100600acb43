package geom

import "errors"

var (
	// ErrInvalidType is returned when a value is not numeric, or is not a
	// sequence of the required length, where a number or sequence is needed.
	ErrInvalidType = errors.New("geom: invalid type")

	// ErrInvalidArgument is returned when a structurally valid input breaks a
	// domain constraint: a non-positive radius or scale factor, an origin
	// outside [0, 1], an unsupported sequence length, an unrecognized shape
	// source, or an empty list where at least one shape is required.
	ErrInvalidArgument = errors.New("geom: invalid argument")
)
