package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type ledgerReconciler interface {
	ReconcileLedgers(ctx context.Context) ([]domain.LedgerDrift, error)
}

// Scheduler periodically reconciles capacity ledgers against the bookings
// table. Drift appears only after a crash between a ledger write and the
// booking write it belongs to.
type Scheduler struct {
	bookingService ledgerReconciler
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService ledgerReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	drifts, err := s.bookingService.ReconcileLedgers(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile capacity ledgers",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drifts {
		s.logger.Warn("capacity ledger drift repaired",
			logger.String("event_id", d.EventID),
			logger.Int("ledger_tickets", d.LedgerTickets),
			logger.Int("approved_tickets", d.ApprovedTickets),
		)
	}
}
