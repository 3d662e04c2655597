// Package validator checks that values are date-times written as
// "YYYY-MM-DD HH:MM:SS" and that they name a real calendar day and a valid
// wall-clock time.
//
// Validation is split into three pure building blocks and one orchestrating
// entry point:
//   - ParseDateTime  – lexical match against DateTimeLayout, returns DateTimeFields
//   - CheckDate      – Gregorian month lengths and leap years
//   - CheckTime      – hour 0-23, minute 0-59, second 0-59
//   - ValidateDateTime – converts an arbitrary value to text and reports violations
//
// # Violations and contract errors
//
// ValidateDateTime has two separate failure channels. Problems with the data
// are returned as ValidationErrors, each carrying a ViolationKind
// (InvalidFormat, InvalidDate or InvalidTime), the offending text and
// translation metadata. A malformed value produces only InvalidFormat; a
// well-formed one may produce InvalidDate and InvalidTime together.
//
// Passing a value that has no text form (a struct, map, slice, channel...)
// is a programming error and is returned as an error wrapping
// ErrUnexpectedType instead.
//
// # Usage
//
//	verrs, err := validator.ValidateDateTime("starts_at", form.StartsAt)
//	if err != nil {
//	    return err
//	}
//	for _, v := range verrs {
//	    log.Printf("%s: %s (%s)", v.Field, v.Message, v.Code.UUID())
//	}
//
// For string input the same checks are available as Rule values, so they
// compose with other rules through Apply:
//
//	err := validator.Apply(append(
//	    validator.DateTimeRules("starts_at", startsAt),
//	    validator.DateTimeRules("ends_at", endsAt)...,
//	)...)
//
// All functions are stateless and safe for concurrent use.
package validator
