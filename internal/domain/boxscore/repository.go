package boxscore

import "context"

// Repository replaces a game's stat lines wholesale; each call deletes the game's
// existing rows before inserting.
type Repository interface {
	ReplaceBatting(ctx context.Context, gamePK int64, rows []BattingLine) error
	ReplacePitching(ctx context.Context, gamePK int64, rows []PitchingLine) error
}
