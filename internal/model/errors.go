package model

import "errors"

// Errors used by the outer layers (API, CLI). Roster operations themselves
// report business outcomes as messages, not errors.
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrValidationFailed = errors.New("validation failed")
	ErrPlayerExists     = errors.New("player already exists")
)
