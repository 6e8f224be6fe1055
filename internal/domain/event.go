package domain

import "time"

type ApprovalMode string

const (
	ApprovalModeAutomatic ApprovalMode = "automatic"
	ApprovalModeManual    ApprovalMode = "manual"
)

func (m ApprovalMode) Valid() bool {
	return m == ApprovalModeAutomatic || m == ApprovalModeManual
}

type Event struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	EventDate    time.Time    `json:"event_date"`
	Capacity     int          `json:"capacity"`
	PriceCents   int64        `json:"price_cents"`
	ApprovalMode ApprovalMode `json:"approval_mode"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type EventDetails struct {
	Event          Event     `json:"event"`
	AvailableSeats int       `json:"available_seats"`
	Bookings       []Booking `json:"bookings"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	EventDate    time.Time
	Capacity     int
	PriceCents   int64
	ApprovalMode ApprovalMode
}
