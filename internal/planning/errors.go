package planning

import "errors"

var (
	ErrInvalidDay    = errors.New("invalid day")
	ErrInvalidStatus = errors.New("status must be todo, done or all")
)
