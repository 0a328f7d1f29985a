package errs_test

import (
	"errors"
	"testing"

	"eta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("policy", "5b1e")

		assert.Equal(t, "policy", err.ParamName)
		assert.Equal(t, "5b1e", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: policy 5b1e", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("warehouse", "IST-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: warehouse, ID is: IST-1 (cause: connection reset)",
			err.Error())
	})

	t.Run("non string id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("policy", 42)
		assert.Equal(t, "object not found: policy 42", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("estimateMode")
	assert.Equal(t, "value is invalid: estimateMode", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("minDays", errors.New("3 is greater than maxDays 2"))
	assert.Equal(t, "value is invalid: minDays (cause: 3 is greater than maxDays 2)", withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("cutoffHour", 24, 0, 23)

		assert.Equal(t, 24, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 23, err.Max)
		assert.Equal(t, "value is out of range: cutoffHour is 24, min value is 0, max value is 23", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("capacityFactor", 2.5, 0.5, 2.0, errors.New("too high"))
		assert.Equal(t,
			"value is out of range: capacityFactor is 2.5, min value is 0.5, max value is 2 (cause: too high)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("fixedDays")
	assert.Equal(t, "value is required: fixedDays", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("dailyCapacity", errors.New("rule based handmade policy"))
	assert.Equal(t, "value is required: dailyCapacity (cause: rule based handmade policy)", withCause.Error())
}

func TestErrorsSurviveJoin(t *testing.T) {
	joined := errors.Join(
		errs.NewValueIsRequiredError("fixedDays"),
		errs.NewValueIsOutOfRangeError("cutoffHour", -1, 0, 23),
	)

	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.ErrorIs(t, joined, errs.ErrValueIsOutOfRange)
	assert.NotErrorIs(t, joined, errs.ErrObjectNotFound)
}
