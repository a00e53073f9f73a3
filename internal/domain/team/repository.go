package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, rows ...Team) error
	Exists(ctx context.Context, id int64) (bool, error)
}
