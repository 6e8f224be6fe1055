package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_AllowedPairs(t *testing.T) {
	cases := []struct {
		from   BookingStatus
		to     BookingStatus
		effect CapacityEffect
	}{
		{BookingStatusPending, BookingStatusApproved, EffectReserve},
		{BookingStatusPending, BookingStatusRejected, EffectNone},
		{BookingStatusPending, BookingStatusCancelled, EffectNone},
		{BookingStatusApproved, BookingStatusCancelled, EffectRelease},
	}

	for _, tc := range cases {
		effect, err := Transition(tc.from, tc.to)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.effect, effect, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition_IllegalPairs(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{BookingStatusCancelled, BookingStatusApproved},
		{BookingStatusCancelled, BookingStatusPending},
		{BookingStatusRejected, BookingStatusApproved},
		{BookingStatusRejected, BookingStatusPending},
		{BookingStatusApproved, BookingStatusPending},
		{BookingStatusApproved, BookingStatusRejected},
		{BookingStatusPending, BookingStatusPending},
		{BookingStatusApproved, BookingStatusApproved},
	}

	for _, tc := range cases {
		effect, err := Transition(tc.from, tc.to)
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, EffectNone, effect)
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	_, err := Transition(BookingStatus("confirmed"), BookingStatusApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusRejected.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusApproved.Terminal())
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.True(t, BookingStatusApproved.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.True(t, BookingStatusRejected.Valid())
	assert.False(t, BookingStatus("confirmed").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, BookingStatusApproved, InitialStatus(ApprovalModeAutomatic))
	assert.Equal(t, BookingStatusPending, InitialStatus(ApprovalModeManual))
}

func TestNewBooking_DerivesTotalPrice(t *testing.T) {
	event := &Event{ID: "e1", PriceCents: 2550}
	now := time.Now()

	b := NewBooking("b1", event, "u1", 4, BookingStatusApproved, now)

	assert.Equal(t, "e1", b.EventID)
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, int64(10200), b.TotalPriceCents)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, now, b.UpdatedAt)
}
