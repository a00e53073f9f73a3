package sqlstore

import (
	"context"

	"github.com/riskibarqy/mlb-stats/internal/domain/play"
)

type PlayRepository struct {
	store *Store
}

func NewPlayRepository(store *Store) *PlayRepository {
	return &PlayRepository{store: store}
}

func (r *PlayRepository) ReplaceGame(ctx context.Context, gamePK int64, plays play.GamePlays) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		// batted_balls references pitches, so children go first.
		for _, table := range []string{"batted_balls", "pitches", "at_bats"} {
			if err := r.store.deleteGame(ctx, table, gamePK); err != nil {
				return err
			}
		}

		if err := insertRows(ctx, r.store, "at_bats", stamped(r.store.prov, plays.AtBats)); err != nil {
			return err
		}
		if err := insertRows(ctx, r.store, "pitches", stamped(r.store.prov, plays.Pitches)); err != nil {
			return err
		}
		return insertRows(ctx, r.store, "batted_balls", stamped(r.store.prov, plays.BattedBalls))
	})
}
