package order_test

import (
	"fmt"
	"testing"

	"burger/internal/core/domain/model/order"
	"burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.UnknownStatus))
	assert.Equal(t, 1, int(order.Idle))
	assert.Equal(t, 2, int(order.Submitting))
	assert.Equal(t, 3, int(order.Succeeded))
	assert.Equal(t, 4, int(order.Failed))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Idle, order.Submitting, order.Succeeded, order.Failed} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		for _, s := range []order.Status{order.UnknownStatus, order.Status(-1), order.Status(5)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Idle", order.Idle.String())
	assert.Equal(t, "Submitting", order.Submitting.String())
	assert.Equal(t, "Succeeded", order.Succeeded.String())
	assert.Equal(t, "Failed", order.Failed.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Submit(t *testing.T) {
	t.Run("should start from idle and settled statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Idle, order.Succeeded, order.Failed} {
			next, err := s.Submit()

			require.NoError(t, err, s.String())
			assert.Equal(t, order.Submitting, next)
		}
	})

	t.Run("should refuse overlapping submit", func(t *testing.T) {
		next, err := order.Submitting.Submit()

		require.ErrorIs(t, err, order.ErrSubmissionInProgress)
		assert.Equal(t, order.Submitting, next)
	})

	t.Run("should refuse unknown status", func(t *testing.T) {
		_, err := order.UnknownStatus.Submit()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Settle(t *testing.T) {
	t.Run("should settle only from submitting", func(t *testing.T) {
		succeeded, err := order.Submitting.Succeed()
		require.NoError(t, err)
		assert.Equal(t, order.Succeeded, succeeded)

		failed, err := order.Submitting.Fail()
		require.NoError(t, err)
		assert.Equal(t, order.Failed, failed)
	})

	t.Run("should reject settling when nothing is in flight", func(t *testing.T) {
		for _, s := range []order.Status{order.Idle, order.Succeeded, order.Failed, order.UnknownStatus} {
			_, err := s.Succeed()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not a valid status to succeed")

			_, err = s.Fail()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not a valid status to fail")
		}
	})
}

func TestStatus_Dismiss(t *testing.T) {
	testCases := []struct {
		from     order.Status
		expected order.Status
	}{
		{order.Idle, order.Idle},
		{order.Succeeded, order.Idle},
		{order.Failed, order.Idle},
		{order.Submitting, order.Submitting},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String(), func(t *testing.T) {
			next, err := tc.from.Dismiss()

			require.NoError(t, err)
			assert.Equal(t, tc.expected, next)
		})
	}

	t.Run("should be idempotent", func(t *testing.T) {
		once, err := order.Succeeded.Dismiss()
		require.NoError(t, err)
		twice, err := once.Dismiss()
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})

	t.Run("should reject unknown", func(t *testing.T) {
		_, err := order.UnknownStatus.Dismiss()
		require.Error(t, err)
	})
}

func TestStatus_IsSettled(t *testing.T) {
	assert.True(t, order.Succeeded.IsSettled())
	assert.True(t, order.Failed.IsSettled())
	assert.False(t, order.Idle.IsSettled())
	assert.False(t, order.Submitting.IsSettled())
}
