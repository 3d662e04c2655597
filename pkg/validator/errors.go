package validator

import "errors"

var (
	// ErrUnexpectedType is returned when a value cannot be converted to a string
	// for validation. It signals a caller bug and is never reported as a violation.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrUnknownViolationKind is returned when parsing a violation code that is not recognised.
	ErrUnknownViolationKind = errors.New("unknown violation kind")
)
