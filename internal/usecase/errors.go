package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	ErrNotFound     = crerr.New("resource not found")
	// ErrGameNotStarted means the boxscore lists no players on either side.
	ErrGameNotStarted = crerr.New("game has no player data")
	// ErrNoPlays means the live feed has an empty play list.
	ErrNoPlays = crerr.New("game has no play data")
)
