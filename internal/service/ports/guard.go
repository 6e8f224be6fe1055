package ports

import "context"

// CapacityGuard is the atomic keeper of per-event approved ticket counts.
type CapacityGuard interface {
	Reserve(ctx context.Context, eventID string, count, capacity int) error
	Release(ctx context.Context, eventID string, count int) error
}
