package model

import "errors"

// ErrInvalidInput marks malformed or incomplete report input.
var ErrInvalidInput = errors.New("invalid input")
