package errs_test

import (
	"errors"
	"testing"

	"exportpro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "8f14e45f")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "8f14e45f", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 8f14e45f", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("supplierId", "42", cause)

		assert.Equal(t, "supplierId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: supplierId, ID is: 42 (cause: connection reset)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("orderNumber")

		assert.Equal(t, "orderNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: orderNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("sequence segment is not a number")
		err := errs.NewValueIsInvalidErrorWithCause("orderNumber", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: orderNumber (cause: sequence segment is not a number)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("reliabilityScore", 12, 0, 10)

		assert.Equal(t, "reliabilityScore", err.ParamName)
		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 12 is reliabilityScore, min value is 0, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "first\nsecond", 0, 10)
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("companyName")

		assert.Equal(t, "companyName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: companyName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("products list is empty")
		err := errs.NewValueIsRequiredErrorWithCause("products", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: products (cause: products list is empty)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestStoreError(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := errs.NewStoreError("persist order", cause)

	assert.Equal(t, "persist order", err.Stage)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "store operation failed: stage is: persist order (cause: deadlock detected)", err.Error())
	require.ErrorIs(t, err, errs.ErrStoreFailure)
}

func TestAnalysisDataError(t *testing.T) {
	cause := errors.New("read timeout")
	err := errs.NewAnalysisDataError("cardamom-8mm", cause)

	assert.Equal(t, "cardamom-8mm", err.ProductID)
	assert.Equal(t, "analysis data unavailable: product is: cardamom-8mm (cause: read timeout)", err.Error())
	require.ErrorIs(t, err, errs.ErrAnalysisData)
}

func TestRenderError(t *testing.T) {
	cause := errors.New("disk full")
	err := errs.NewRenderError("packing_list", cause)

	assert.Equal(t, "packing_list", err.Kind)
	assert.Equal(t, "document render failed: kind is: packing_list (cause: disk full)", err.Error())
	require.ErrorIs(t, err, errs.ErrRenderFailure)
}

func TestLifecycleError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewLifecycleError("completed", "created", nil)

		assert.Equal(t, "completed", err.From)
		assert.Equal(t, "created", err.To)
		assert.Equal(t, "status transition denied: from is: completed, to is: created", err.Error())
		require.ErrorIs(t, err, errs.ErrLifecycleDenied)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("transition table forbids rollback")
		err := errs.NewLifecycleError("completed", "created", cause)

		assert.Equal(t,
			"status transition denied: from is: completed, to is: created (cause: transition table forbids rollback)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "store operation failed", errs.ErrStoreFailure.Error())
		assert.Equal(t, "analysis data unavailable", errs.ErrAnalysisData.Error())
		assert.Equal(t, "document render failed", errs.ErrRenderFailure.Error())
		assert.Equal(t, "status transition denied", errs.ErrLifecycleDenied.Error())
	})

	t.Run("errors.Is works through typed errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("riskScore", 1.5, 0, 1), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("clientInfo"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("stale")), errs.ErrVersionIsInvalid)
	})
}
