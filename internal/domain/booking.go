package domain

import "time"

type Booking struct {
	ID              string        `json:"id"`
	EventID         string        `json:"event_id"`
	UserID          string        `json:"user_id"`
	TicketCount     int           `json:"ticket_count"`
	Status          BookingStatus `json:"status"`
	TotalPriceCents int64         `json:"total_price_cents"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// NewBooking builds a fully-formed booking; total price is derived here once,
// never recomputed by mutation.
func NewBooking(id string, event *Event, userID string, ticketCount int, status BookingStatus, now time.Time) *Booking {
	return &Booking{
		ID:              id,
		EventID:         event.ID,
		UserID:          userID,
		TicketCount:     ticketCount,
		Status:          status,
		TotalPriceCents: event.PriceCents * int64(ticketCount),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type BookingPage struct {
	Bookings []*Booking `json:"bookings"`
	Page     int        `json:"page"`
	Size     int        `json:"size"`
	Total    int        `json:"total"`
}
