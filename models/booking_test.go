package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusAccepted, StatusAccepted, true},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusRejected, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusCompleted, StatusAccepted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusPending, false},
		{StatusAccepted, StatusPending, false},
		{StatusPending, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

// Completed bookings are terminal but still occupy their slot; only
// rejected and cancelled free it.
func TestBookingStatusOccupies(t *testing.T) {
	assert.True(t, StatusPending.Occupies())
	assert.True(t, StatusAccepted.Occupies())
	assert.True(t, StatusCompleted.Occupies())
	assert.False(t, StatusRejected.Occupies())
	assert.False(t, StatusCancelled.Occupies())
}

// SlotReleasingStatuses feeds the NOT IN clauses of the occupancy
// queries and the partial unique index, so it must list exactly the
// statuses Occupies denies. In particular completed stays out of it.
func TestSlotReleasingStatusesMatchOccupies(t *testing.T) {
	all := []BookingStatus{StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled}

	var releasing []BookingStatus
	for _, s := range all {
		if !s.Occupies() {
			releasing = append(releasing, s)
		}
	}
	assert.ElementsMatch(t, releasing, SlotReleasingStatuses)
	assert.NotContains(t, SlotReleasingStatuses, StatusCompleted)
}
