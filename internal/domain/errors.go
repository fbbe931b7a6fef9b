package domain

import "errors"

var (
	// ErrInvalidInput marks a declined submission: required fields missing or
	// malformed. Nothing is written when an operation returns it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfScope is returned when an entity exists but belongs to another company.
	ErrOutOfScope = errors.New("entity belongs to another company")
)
