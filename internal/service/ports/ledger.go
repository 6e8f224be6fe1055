package ports

import (
	"context"

	"github.com/stpnv0/TicketGate/internal/domain"
)

type LedgerRepo interface {
	Get(ctx context.Context, eventID string) (*domain.CapacityLedger, error)
	CompareAndSwap(ctx context.Context, eventID string, approvedTickets int, expectedVersion int64) (bool, error)
	List(ctx context.Context) ([]*domain.CapacityLedger, error)
}
