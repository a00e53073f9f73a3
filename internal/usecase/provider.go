package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// StatsProvider is the subset of the stats API the collectors depend on. Game documents
// may be served from cache; everything else is fetched fresh.
type StatsProvider interface {
	Schedule(ctx context.Context, start, end time.Time) (upstream.Schedule, error)
	GameFeed(ctx context.Context, gamePK int64) (upstream.GameFeed, error)
	Boxscore(ctx context.Context, gamePK int64) (upstream.Boxscore, error)
	Team(ctx context.Context, teamID int64) (upstream.Team, error)
	Player(ctx context.Context, playerID int64) (upstream.Person, error)
	Players(ctx context.Context, ids []int64) ([]upstream.Person, error)
	Venue(ctx context.Context, venueID int64, season int) (upstream.Venue, error)
	Roster(ctx context.Context, teamID int64, date time.Time) (upstream.Roster, error)
}

// TxManager runs fn in one transaction. Nested calls join the outer transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
