package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/stpnv0/TicketGate/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
	ledgerRepo  ports.LedgerRepo
}

func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo, ledgerRepo ports.LedgerRepo) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if !input.ApprovalMode.Valid() {
		return nil, fmt.Errorf("%w: approval_mode must be automatic or manual", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		EventDate:    input.EventDate,
		Capacity:     input.Capacity,
		PriceCents:   input.PriceCents,
		ApprovalMode: input.ApprovalMode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetails returns the event with its remaining seats. Availability comes
// from the capacity ledger, not from counting booking rows, so it matches
// what admission control will actually enforce.
func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	led, err := s.ledgerRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}

	bookings, _, err := s.bookingRepo.ListByEvent(ctx, id, maxPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.EventDetails{
		Event:          *event,
		AvailableSeats: event.Capacity - led.ApprovedTickets,
	}

	details.Bookings = make([]domain.Booking, len(bookings))
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
