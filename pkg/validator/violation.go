package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// ViolationKind identifies why a date-time value was rejected.
type ViolationKind string

const (
	// InvalidFormat means the value does not match YYYY-MM-DD HH:MM:SS.
	InvalidFormat ViolationKind = "invalid_format"
	// InvalidDate means the date part names a day that does not exist.
	InvalidDate ViolationKind = "invalid_date"
	// InvalidTime means the time part is out of range.
	InvalidTime ViolationKind = "invalid_time"
)

// Stable error codes, shared with other implementations of the same constraint.
var kindCodes = map[ViolationKind]uuid.UUID{
	InvalidFormat: uuid.MustParse("1a9da513-2640-4f84-9b6a-4d99dcddc628"),
	InvalidDate:   uuid.MustParse("d52afa47-620d-4d99-9f08-f4d85b36e33c"),
	InvalidTime:   uuid.MustParse("5e797c9d-74f7-4098-baa3-94390c447b27"),
}

func (k ViolationKind) String() string {
	return string(k)
}

// UUID returns the stable error code of the kind, or uuid.Nil for an unknown kind.
func (k ViolationKind) UUID() uuid.UUID {
	return kindCodes[k]
}

// ParseViolationKind accepts either the kind name or its UUID code.
func ParseViolationKind(s string) (ViolationKind, error) {
	if _, ok := kindCodes[ViolationKind(s)]; ok {
		return ViolationKind(s), nil
	}
	if id, err := uuid.Parse(s); err == nil {
		for kind, code := range kindCodes {
			if code == id {
				return kind, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownViolationKind, s)
}
