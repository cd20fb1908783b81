package domain

import "errors"

// Domain errors.
// Board mutations never fail; these are returned by the outer layers.
var (
	ErrUnknownEntityKind = errors.New("unknown entity kind")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrUnknownReference  = errors.New("unknown reference")
	ErrEmptyScript       = errors.New("script contains no steps")
	ErrConfigExists      = errors.New("config file already exists")
	ErrInvalidDragMode   = errors.New("invalid drag mode")
	ErrUnknownFormat     = errors.New("unknown output format")
)
