package ports

import (
	"context"

	"github.com/stpnv0/TicketGate/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, int, error)
	ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]*domain.Booking, int, error)
	SumApproved(ctx context.Context, eventID string) (int, error)
}
