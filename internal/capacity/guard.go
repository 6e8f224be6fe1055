package capacity

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LedgerStore is the durable home of per-event capacity ledgers.
// Get creates the row lazily on first use. CompareAndSwap writes the new
// ticket count only if the row's version still equals expectedVersion and
// reports whether the write happened.
type LedgerStore interface {
	Get(ctx context.Context, eventID string) (*domain.CapacityLedger, error)
	CompareAndSwap(ctx context.Context, eventID string, approvedTickets int, expectedVersion int64) (bool, error)
}

const (
	defaultAttempts  = 5
	defaultBaseDelay = 10 * time.Millisecond
)

// Guard is the only writer of approved-ticket counts. Reserve and Release on
// the same event are linearized through the versioned conditional write;
// events never contend with each other.
type Guard struct {
	ledger    LedgerStore
	attempts  int
	baseDelay time.Duration
	logger    logger.Logger
}

func NewGuard(ledger LedgerStore, log logger.Logger) *Guard {
	return &Guard{
		ledger:    ledger,
		attempts:  defaultAttempts,
		baseDelay: defaultBaseDelay,
		logger:    log,
	}
}

// Reserve atomically adds count tickets to the event's ledger if they fit
// within capacity. Returns domain.ErrCapacityExceeded with no side effect
// when they do not, and domain.ErrConcurrencyConflict once the retry budget
// is exhausted.
func (g *Guard) Reserve(ctx context.Context, eventID string, count, capacity int) error {
	for attempt := 0; attempt < g.attempts; attempt++ {
		led, err := g.ledger.Get(ctx, eventID)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		if led.ApprovedTickets+count > capacity {
			return domain.ErrCapacityExceeded
		}

		ok, err := g.ledger.CompareAndSwap(ctx, eventID, led.ApprovedTickets+count, led.Version)
		if err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
		if ok {
			return nil
		}

		if err := g.backoff(ctx, attempt); err != nil {
			return err
		}
	}

	g.logger.Warn("capacity reserve retries exhausted",
		logger.String("event_id", eventID),
		logger.Int("count", count),
	)
	return domain.ErrConcurrencyConflict
}

// Release subtracts count tickets from the event's ledger, floored at zero.
func (g *Guard) Release(ctx context.Context, eventID string, count int) error {
	for attempt := 0; attempt < g.attempts; attempt++ {
		led, err := g.ledger.Get(ctx, eventID)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		next := led.ApprovedTickets - count
		if next < 0 {
			next = 0
		}

		ok, err := g.ledger.CompareAndSwap(ctx, eventID, next, led.Version)
		if err != nil {
			return fmt.Errorf("write ledger: %w", err)
		}
		if ok {
			return nil
		}

		if err := g.backoff(ctx, attempt); err != nil {
			return err
		}
	}

	g.logger.Warn("capacity release retries exhausted",
		logger.String("event_id", eventID),
		logger.Int("count", count),
	)
	return domain.ErrConcurrencyConflict
}

// backoff sleeps an exponentially growing, jittered delay between CAS
// attempts so colliding writers desynchronize.
func (g *Guard) backoff(ctx context.Context, attempt int) error {
	delay := g.baseDelay << attempt
	delay += time.Duration(rand.Int63n(int64(g.baseDelay)))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
