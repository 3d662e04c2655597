package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datetimecheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("includes field, message and code", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "starts_at",
			Message: "This value is not a valid datetime.",
			Code:    validator.InvalidDate,
		})
		assert.Equal(t, "validation failed: starts_at: This value is not a valid datetime. (invalid_date)", errs.Error())
	})

	t.Run("joins multiple violations", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "starts_at", Message: "bad", Code: validator.InvalidDate})
		errs.Add(validator.ValidationError{Field: "starts_at", Message: "bad", Code: validator.InvalidTime})

		msg := errs.Error()
		assert.Contains(t, msg, "(invalid_date)")
		assert.Contains(t, msg, "(invalid_time)")
		assert.Contains(t, msg, "; ")
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "starts_at", Message: "bad date", Code: validator.InvalidDate})
	errs.Add(validator.ValidationError{Field: "starts_at", Message: "bad time", Code: validator.InvalidTime})
	errs.Add(validator.ValidationError{Field: "ends_at", Message: "bad format", Code: validator.InvalidFormat})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("starts_at"))
		assert.True(t, errs.Has("ends_at"))
		assert.False(t, errs.Has("created_at"))
	})

	t.Run("has code", func(t *testing.T) {
		assert.True(t, errs.HasCode(validator.InvalidFormat))
		assert.True(t, errs.HasCode(validator.InvalidTime))

		var empty validator.ValidationErrors
		assert.False(t, empty.HasCode(validator.InvalidDate))
	})

	t.Run("codes keep report order", func(t *testing.T) {
		assert.Equal(t,
			[]validator.ViolationKind{validator.InvalidDate, validator.InvalidTime, validator.InvalidFormat},
			errs.Codes(),
		)
	})

	t.Run("get returns messages per field", func(t *testing.T) {
		assert.Equal(t, []string{"bad date", "bad time"}, errs.Get("starts_at"))
		assert.Empty(t, errs.Get("created_at"))
	})

	t.Run("fields are unique", func(t *testing.T) {
		assert.Equal(t, []string{"starts_at", "ends_at"}, errs.Fields())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())

		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
	})
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b"}},
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failed rules in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Code: validator.InvalidDate}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b"}},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Code: validator.InvalidTime}},
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []validator.ViolationKind{validator.InvalidDate, validator.InvalidTime}, verrs.Codes())
		assert.False(t, verrs.Has("b"))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "starts_at", Code: validator.InvalidFormat}}
		wrapped := fmt.Errorf("create event: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.HasCode(validator.InvalidFormat))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("contract errors are not validation errors", func(t *testing.T) {
		_, err := validator.ValidateDateTime("starts_at", struct{}{})
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
	})
}
