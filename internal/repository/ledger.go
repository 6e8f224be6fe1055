package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TicketGate/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// LedgerRepository stores one versioned row per event with its approved
// ticket count. Every write bumps the version; CompareAndSwap is the only
// mutation path, so readers always observe a consistent (count, version) pair.
type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Get returns the ledger row for the event, creating an empty one on first
// use. The insert is idempotent under concurrent first reads.
func (r *LedgerRepository) Get(ctx context.Context, eventID string) (*domain.CapacityLedger, error) {
	insert := `INSERT INTO event_capacity (event_id, approved_tickets, version)
			   VALUES ($1, 0, 1)
			   ON CONFLICT (event_id) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, insert, eventID); err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}

	query := `SELECT event_id, approved_tickets, version
			  FROM event_capacity
			  WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}

	var led domain.CapacityLedger
	if err = row.Scan(&led.EventID, &led.ApprovedTickets, &led.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan ledger: %w", err)
	}

	return &led, nil
}

// CompareAndSwap writes the new count only if the row's version is still
// expectedVersion. Reports false when another writer got there first.
func (r *LedgerRepository) CompareAndSwap(ctx context.Context, eventID string, approvedTickets int, expectedVersion int64) (bool, error) {
	query := `UPDATE event_capacity
			  SET approved_tickets = $2, version = version + 1
			  WHERE event_id = $1 AND version = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, approvedTickets, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("swap ledger: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ledger rows affected: %w", err)
	}

	return rows > 0, nil
}

// List returns every ledger row, for reconciliation.
func (r *LedgerRepository) List(ctx context.Context) ([]*domain.CapacityLedger, error) {
	query := `SELECT event_id, approved_tickets, version
			  FROM event_capacity
			  ORDER BY event_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	defer rows.Close()

	var res []*domain.CapacityLedger
	for rows.Next() {
		var led domain.CapacityLedger
		if err = rows.Scan(&led.EventID, &led.ApprovedTickets, &led.Version); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		res = append(res, &led)
	}

	return res, rows.Err()
}
