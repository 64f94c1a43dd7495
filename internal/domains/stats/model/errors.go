package model

import "errors"

// Errors
var (
	ErrInvalidAmount = errors.New("increment amount must be positive")
)
