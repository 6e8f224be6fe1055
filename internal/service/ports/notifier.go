package ports

import (
	"context"

	"github.com/stpnv0/TicketGate/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingPending(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingApproved(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingRejected(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
}
