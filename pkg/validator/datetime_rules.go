package validator

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const dateTimeMessage = "This value is not a valid datetime."

// ValidateDateTime checks that value is a "YYYY-MM-DD HH:MM:SS" string naming an
// existing day and a valid wall-clock time.
//
// nil, the empty string and time.Time values are skipped: absence is handled by
// required-style rules and typed values need no textual check. Strings, byte
// slices, fmt.Stringer, encoding.TextMarshaler and scalar kinds are converted to
// text; anything else yields an error wrapping ErrUnexpectedType.
//
// A format violation is reported alone. Otherwise date and time are checked
// independently, so up to two violations can be returned.
func ValidateDateTime(field string, value any) (ValidationErrors, error) {
	if skipDateTime(value) {
		return nil, nil
	}

	s, err := stringify(value)
	if err != nil {
		return nil, err
	}

	// Converted values are checked even when empty: only a literal "" is absent.
	return collect(dateTimeRules(field, s)), nil
}

// DateTime is the Apply-style form of ValidateDateTime for string input.
// It returns nil or ValidationErrors.
func DateTime(field, value string) error {
	return Apply(DateTimeRules(field, value)...)
}

// DateTimeRules returns the format, date and time rules for value. The date and
// time rules pass whenever the format rule fails, so a malformed value yields a
// single violation. An empty value yields no rules.
func DateTimeRules(field, value string) []Rule {
	if value == "" {
		return nil
	}
	return dateTimeRules(field, value)
}

func dateTimeRules(field, value string) []Rule {
	fields, matched := ParseDateTime(value)

	return []Rule{
		{
			Check: func() bool { return matched },
			Error: dateTimeViolation(field, value, InvalidFormat),
		},
		{
			Check: func() bool { return !matched || fields.ValidDate() },
			Error: dateTimeViolation(field, value, InvalidDate),
		},
		{
			Check: func() bool { return !matched || fields.ValidTime() },
			Error: dateTimeViolation(field, value, InvalidTime),
		},
	}
}

func dateTimeViolation(field, value string, kind ViolationKind) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        dateTimeMessage,
		Code:           kind,
		Value:          value,
		TranslationKey: "validation.datetime",
		TranslationValues: map[string]any{
			"field": field,
			"value": value,
		},
	}
}

func skipDateTime(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case time.Time:
		return true
	case *time.Time:
		return true
	}

	// A typed nil pointer carries no value either.
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// stringify converts value to the text that is matched against DateTimeLayout.
func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %T: %w", ErrUnexpectedType, value, err)
		}
		return string(b), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("%w: got %T, want string or scalar", ErrUnexpectedType, value)
}
