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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, event_id, user_id, ticket_count, status, total_price_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.EventID, b.UserID, b.TicketCount,
		string(b.Status), b.TotalPriceCents, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, ticket_count, status, total_price_cents, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = r.scan(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// UpdateStatus moves a booking from one status to another, conditionally on
// the booking still being in the expected status. A concurrent status change
// surfaces as ErrConcurrencyConflict so the caller can reload and retry.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(from), string(to))
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrConcurrencyConflict
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Booking, int, error) {
	query := `SELECT id, event_id, user_id, ticket_count, status, total_price_cents, created_at, updated_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query,
		`SELECT COUNT(*) FROM bookings WHERE user_id = $1`,
		userID, limit, offset,
	)
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]*domain.Booking, int, error) {
	query := `SELECT id, event_id, user_id, ticket_count, status, total_price_cents, created_at, updated_at
			  FROM bookings
			  WHERE event_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query,
		`SELECT COUNT(*) FROM bookings WHERE event_id = $1`,
		eventID, limit, offset,
	)
}

// SumApproved is the reconciliation view of the ledger: the actual ticket
// total over approved bookings for an event.
func (r *BookingRepository) SumApproved(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COALESCE(SUM(ticket_count), 0)
			  FROM bookings
			  WHERE event_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, string(domain.BookingStatusApproved))
	if err != nil {
		return 0, fmt.Errorf("sum approved: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan approved sum: %w", err)
	}

	return total, nil
}

func (r *BookingRepository) list(ctx context.Context, query, countQuery, key string, limit, offset int) ([]*domain.Booking, int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, key)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan booking count: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, key, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = r.scan(rows.Scan, &b); err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, total, rows.Err()
}

func (r *BookingRepository) scan(scan func(dest ...any) error, b *domain.Booking) error {
	return scan(
		&b.ID, &b.EventID, &b.UserID, &b.TicketCount,
		&b.Status, &b.TotalPriceCents, &b.CreatedAt, &b.UpdatedAt,
	)
}
