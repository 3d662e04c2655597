package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one violation found in an input value.
// Message is a default English text; callers that render messages themselves
// should use TranslationKey and TranslationValues instead.
type ValidationError struct {
	Field             string
	Message           string
	Code              ViolationKind
	Value             string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is the violation sequence produced by a single validation call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s (%s)", err.Field, err.Message, err.Code))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// HasCode reports whether any violation is of the given kind.
func (ve ValidationErrors) HasCode(code ViolationKind) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

// Codes returns violation kinds in the order they were reported.
func (ve ValidationErrors) Codes() []ViolationKind {
	codes := make([]ViolationKind, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a check with the violation reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs the rules in order and returns the failed ones as ValidationErrors,
// or nil when every check passes.
func Apply(rules ...Rule) error {
	if errs := collect(rules); !errs.IsEmpty() {
		return errs
	}
	return nil
}

func collect(rules []Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
