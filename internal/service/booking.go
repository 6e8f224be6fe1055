package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/stpnv0/TicketGate/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	ledgerRepo  ports.LedgerRepo
	guard       ports.CapacityGuard
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	ledgerRepo ports.LedgerRepo,
	guard ports.CapacityGuard,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		guard:       guard,
		notifier:    notifier,
		logger:      logger,
	}
}

// CreateBooking admits a booking request against the event's capacity.
// Automatic-approval events reserve seats before anything is persisted, so a
// full event rejects the request with no booking row left behind.
func (s *BookingService) CreateBooking(ctx context.Context, eventID, userID string, ticketCount int) (*domain.Booking, error) {
	if ticketCount < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidTicketCount, ticketCount)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	status := domain.InitialStatus(event.ApprovalMode)

	reserved := false
	if status == domain.BookingStatusApproved {
		if err = s.guard.Reserve(ctx, eventID, ticketCount, event.Capacity); err != nil {
			return nil, err
		}
		reserved = true
	}

	booking := domain.NewBooking(uuid.New().String(), event, userID, ticketCount, status, time.Now().UTC())

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if reserved {
			s.releaseQuiet(ctx, eventID, ticketCount)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("ticket_count", ticketCount),
		logger.String("status", string(status)),
	)

	if status == domain.BookingStatusApproved {
		go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), user, event, booking)
	} else {
		go s.notifier.NotifyBookingPending(context.WithoutCancel(ctx), user, event, booking)
	}

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string, page, size int) (*domain.BookingPage, error) {
	page, size = clampPage(page, size)

	bookings, total, err := s.bookingRepo.ListByUser(ctx, userID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}

	return &domain.BookingPage{Bookings: bookings, Page: page, Size: size, Total: total}, nil
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string, page, size int) (*domain.BookingPage, error) {
	page, size = clampPage(page, size)

	bookings, total, err := s.bookingRepo.ListByEvent(ctx, eventID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}

	return &domain.BookingPage{Bookings: bookings, Page: page, Size: size, Total: total}, nil
}

// UpdateStatus applies a status change through the transition table. A
// pending booking moving to approved reserves seats first and stays pending
// when the event is full.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	effect, err := domain.Transition(booking.Status, status)
	if err != nil {
		return nil, err
	}

	if effect == domain.EffectReserve {
		event, err := s.eventRepo.GetByID(ctx, booking.EventID)
		if err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
		if err = s.guard.Reserve(ctx, booking.EventID, booking.TicketCount, event.Capacity); err != nil {
			return nil, err
		}
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, status); err != nil {
		if effect == domain.EffectReserve {
			s.releaseQuiet(ctx, booking.EventID, booking.TicketCount)
		}
		return nil, err
	}

	if effect == domain.EffectRelease {
		// The cancellation is durable at this point; a failed release only
		// under-reports free seats until the reconciler runs.
		s.releaseQuiet(ctx, booking.EventID, booking.TicketCount)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	s.logger.Info("booking status updated",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("status", string(status)),
	)

	go s.notifyStatus(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CancelBooking cancels a booking; already-terminal bookings are a no-op
// success and never release capacity twice.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.Status.Terminal() {
		return nil
	}

	_, err = s.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	return err
}

// ReconcileLedgers rewrites ledger rows that disagree with the sum of
// approved bookings. Drift appears when a process dies between a capacity
// write and the booking write it compensates for.
func (s *BookingService) ReconcileLedgers(ctx context.Context) ([]domain.LedgerDrift, error) {
	ledgers, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}

	var drifts []domain.LedgerDrift
	for _, led := range ledgers {
		actual, err := s.bookingRepo.SumApproved(ctx, led.EventID)
		if err != nil {
			return nil, fmt.Errorf("sum approved for %s: %w", led.EventID, err)
		}

		if actual == led.ApprovedTickets {
			continue
		}

		ok, err := s.ledgerRepo.CompareAndSwap(ctx, led.EventID, actual, led.Version)
		if err != nil {
			return nil, fmt.Errorf("fix ledger for %s: %w", led.EventID, err)
		}
		if !ok {
			// A live writer moved the row since we read it; it is current now.
			continue
		}

		drifts = append(drifts, domain.LedgerDrift{
			EventID:         led.EventID,
			LedgerTickets:   led.ApprovedTickets,
			ApprovedTickets: actual,
		})
	}

	return drifts, nil
}

func (s *BookingService) releaseQuiet(ctx context.Context, eventID string, count int) {
	if err := s.guard.Release(ctx, eventID, count); err != nil {
		s.logger.Error("failed to release reserved tickets",
			logger.String("event_id", eventID),
			logger.Int("count", count),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) notifyStatus(ctx context.Context, booking *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return
	}

	switch booking.Status {
	case domain.BookingStatusApproved:
		s.notifier.NotifyBookingApproved(ctx, user, event, booking)
	case domain.BookingStatusRejected:
		s.notifier.NotifyBookingRejected(ctx, user, event, booking)
	case domain.BookingStatusCancelled:
		s.notifier.NotifyBookingCancelled(ctx, user, event, booking)
	}
}

func clampPage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
