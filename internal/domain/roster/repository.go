package roster

import "context"

type Repository interface {
	// ReplaceGame deletes every roster entry of the game and inserts rows.
	ReplaceGame(ctx context.Context, gamePK int64, rows []Entry) error
}
