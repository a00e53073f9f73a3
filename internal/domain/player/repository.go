package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, rows ...Player) error
	// MissingIDs returns the subset of ids with no players row, in input order.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
