package poi

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTypeConstraint   = errors.New("type constraint")
	ErrIndexOutOfRange  = errors.New("index out of range")
)
