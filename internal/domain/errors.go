package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable signals a failing upstream dependency.
	ErrUnavailable = errors.New("upstream unavailable")
)
