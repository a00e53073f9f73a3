package venue

import "context"

type Repository interface {
	Upsert(ctx context.Context, row Venue) error
	Exists(ctx context.Context, id int64, year int) (bool, error)
}
