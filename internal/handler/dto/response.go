package dto

import (
	"time"

	"github.com/stpnv0/TicketGate/internal/domain"
)

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	EventDate    string `json:"event_date"`
	Capacity     int    `json:"capacity"`
	PriceCents   int64  `json:"price_cents"`
	ApprovalMode string `json:"approval_mode"`
	CreatedAt    string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse     `json:"event"`
	AvailableSeats int               `json:"available_seats"`
	Bookings       []BookingResponse `json:"bookings"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	EventID         string `json:"event_id"`
	UserID          string `json:"user_id"`
	TicketCount     int    `json:"ticket_count"`
	Status          string `json:"status"`
	TotalPriceCents int64  `json:"total_price_cents"`
	CreatedAt       string `json:"created_at"`
}

type BookingPageResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
	Total    int               `json:"total"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		EventDate:    e.EventDate.Format(time.RFC3339),
		Capacity:     e.Capacity,
		PriceCents:   e.PriceCents,
		ApprovalMode: string(e.ApprovalMode),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AvailableSeats: d.AvailableSeats,
		Bookings:       bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		EventID:         b.EventID,
		UserID:          b.UserID,
		TicketCount:     b.TicketCount,
		Status:          string(b.Status),
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingPageResponse(p *domain.BookingPage) BookingPageResponse {
	bookings := make([]BookingResponse, 0, len(p.Bookings))
	for _, b := range p.Bookings {
		bookings = append(bookings, ToBookingResponse(b))
	}

	return BookingPageResponse{
		Bookings: bookings,
		Page:     p.Page,
		Size:     p.Size,
		Total:    p.Total,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
