package parameter

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrOutOfLimits   = errors.New("out of limits")
	ErrExists        = errors.New("exists")
)
