package synclog

import "context"

type Repository interface {
	// Start inserts entry with status started and returns its id.
	Start(ctx context.Context, entry Entry) (int64, error)
	Finish(ctx context.Context, id int64, status Status, records int64, errMsg *string) error
	Latest(ctx context.Context, limit int) ([]Entry, error)
}
