package play

import "context"

type Repository interface {
	// ReplaceGame deletes batted balls, pitches and at-bats of the game, in that order,
	// then inserts plays. Both steps share one transaction.
	ReplaceGame(ctx context.Context, gamePK int64, plays GamePlays) error
}
