package domain

import "fmt"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRejected  BookingStatus = "rejected"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// Terminal statuses permit no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusRejected
}

// CapacityEffect says what a status change does to the per-event
// approved-ticket ledger.
type CapacityEffect int

const (
	EffectNone CapacityEffect = iota
	EffectReserve
	EffectRelease
)

// InitialStatus is the status a new booking gets at creation time.
// Only approved bookings count against capacity: a pending booking is a
// request awaiting a decision and must not hold seats it might never use.
func InitialStatus(mode ApprovalMode) BookingStatus {
	if mode == ApprovalModeAutomatic {
		return BookingStatusApproved
	}
	return BookingStatusPending
}

var transitions = map[BookingStatus]map[BookingStatus]CapacityEffect{
	BookingStatusPending: {
		BookingStatusApproved:  EffectReserve,
		BookingStatusRejected:  EffectNone,
		BookingStatusCancelled: EffectNone,
	},
	BookingStatusApproved: {
		BookingStatusCancelled: EffectRelease,
	},
}

// Transition validates a status change and returns its capacity effect.
// Illegal pairs fail with ErrInvalidTransition naming both statuses.
func Transition(from, to BookingStatus) (CapacityEffect, error) {
	if effect, ok := transitions[from][to]; ok {
		return effect, nil
	}
	return EffectNone, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
