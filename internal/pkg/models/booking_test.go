package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"Pending to Approved", BookingStatusPending, BookingStatusApproved, true},
		{"Pending to Rejected", BookingStatusPending, BookingStatusRejected, true},
		{"Pending to Cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"Pending to Completed skips approval", BookingStatusPending, BookingStatusCompleted, false},
		{"Approved to Completed", BookingStatusApproved, BookingStatusCompleted, true},
		{"Approved to Cancelled", BookingStatusApproved, BookingStatusCancelled, true},
		{"Approved to Rejected", BookingStatusApproved, BookingStatusRejected, false},
		{"Approved back to Pending", BookingStatusApproved, BookingStatusPending, false},
		{"Rejected is terminal", BookingStatusRejected, BookingStatusPending, false},
		{"Cancelled is terminal", BookingStatusCancelled, BookingStatusApproved, false},
		{"Completed is terminal", BookingStatusCompleted, BookingStatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusApproved.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())
}
