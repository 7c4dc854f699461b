package order_test

import (
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		to      order.Status
		wantErr bool
	}{
		{"pending to approved", order.Pending, order.Approved, false},
		{"pending to canceled", order.Pending, order.Canceled, false},
		{"pending to shipping skips approval", order.Pending, order.Shipping, true},
		{"pending to complete skips approval and shipment", order.Pending, order.Complete, true},
		{"approved to shipping", order.Approved, order.Shipping, false},
		{"approved to canceled", order.Approved, order.Canceled, false},
		{"approved to pending regresses", order.Approved, order.Pending, true},
		{"approved to complete", order.Approved, order.Complete, false},
		{"shipping to complete", order.Shipping, order.Complete, false},
		{"shipping to canceled", order.Shipping, order.Canceled, false},
		{"shipping to pending regresses", order.Shipping, order.Pending, true},
		{"shipping to approved regresses", order.Shipping, order.Approved, true},
		{"same status is legal", order.Approved, order.Approved, false},
		{"pending restated", order.Pending, order.Pending, false},
	}

	for _, tt := range tests {
		t.Run("should handle "+tt.name, func(t *testing.T) {
			err := tt.from.CanTransitionTo(tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStatusChange)

				var edge *errs.InvalidStatusChangeError
				require.ErrorAs(t, err, &edge)
				assert.Equal(t, tt.from.String(), edge.From)
				assert.Equal(t, tt.to.String(), edge.To)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("should reject a transition to an invalid status", func(t *testing.T) {
		err := order.Pending.CanTransitionTo(order.Unknown)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Complete.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Approved.IsTerminal())
	assert.False(t, order.Shipping.IsTerminal())
}

func TestStatus_CanDelete(t *testing.T) {
	t.Run("should allow deleting terminal orders", func(t *testing.T) {
		assert.NoError(t, order.Complete.CanDelete())
		assert.NoError(t, order.Canceled.CanDelete())
	})

	t.Run("should refuse deleting in-flight orders", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Approved, order.Shipping} {
			err := s.CanDelete()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrOrderNotReady)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Approved, order.Shipping, order.Complete, order.Canceled} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Approved", order.Approved.String())
	assert.Equal(t, "Shipping", order.Shipping.String())
	assert.Equal(t, "Complete", order.Complete.String())
	assert.Equal(t, "Canceled", order.Canceled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Approved, order.Shipping, order.Complete, order.Canceled} {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject names outside the valid set", func(t *testing.T) {
		_, err := order.ParseStatus("Delivered")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.ParseStatus("Unknown")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValidStatuses(t *testing.T) {
	valid := order.ValidStatuses()
	assert.Len(t, valid, 5)
	assert.NotContains(t, valid, order.Unknown)
}
