package sqlstore

import (
	"context"

	"github.com/riskibarqy/mlb-stats/internal/domain/roster"
)

type RosterRepository struct {
	store *Store
}

func NewRosterRepository(store *Store) *RosterRepository {
	return &RosterRepository{store: store}
}

func (r *RosterRepository) ReplaceGame(ctx context.Context, gamePK int64, rows []roster.Entry) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.store.deleteGame(ctx, "game_rosters", gamePK); err != nil {
			return err
		}
		return insertRows(ctx, r.store, "game_rosters", stamped(r.store.prov, rows))
	})
}
