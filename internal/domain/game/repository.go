package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, row Game) error
	Exists(ctx context.Context, gamePK int64) (bool, error)
	// ReplaceOfficials deletes every official row of the game and inserts rows.
	ReplaceOfficials(ctx context.Context, gamePK int64, rows []Official) error
	// GamePKsBetween lists known games whose gameDate falls in [start, end], ordered by date.
	GamePKsBetween(ctx context.Context, start, end string) ([]int64, error)
}
