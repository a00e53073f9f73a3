package sqlstore

import (
	"context"

	"github.com/riskibarqy/mlb-stats/internal/domain/boxscore"
)

type BoxscoreRepository struct {
	store *Store
}

func NewBoxscoreRepository(store *Store) *BoxscoreRepository {
	return &BoxscoreRepository{store: store}
}

func (r *BoxscoreRepository) ReplaceBatting(ctx context.Context, gamePK int64, rows []boxscore.BattingLine) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.store.deleteGame(ctx, "game_batting", gamePK); err != nil {
			return err
		}
		return insertRows(ctx, r.store, "game_batting", stamped(r.store.prov, rows))
	})
}

func (r *BoxscoreRepository) ReplacePitching(ctx context.Context, gamePK int64, rows []boxscore.PitchingLine) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.store.deleteGame(ctx, "game_pitching", gamePK); err != nil {
			return err
		}
		return insertRows(ctx, r.store, "game_pitching", stamped(r.store.prov, rows))
	})
}
