package mask

import "errors"

var (
	ErrMaskNotFound = errors.New("mask not found")
	ErrNoMasks      = errors.New("no valid masks found")
)
