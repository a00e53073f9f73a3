package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-stats/internal/domain/game"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
)

type GameRepository struct {
	store *Store
}

func NewGameRepository(store *Store) *GameRepository {
	return &GameRepository{store: store}
}

func (r *GameRepository) Upsert(ctx context.Context, row game.Game) error {
	return insertRows(ctx, r.store, "games", stamped(r.store.prov, []game.Game{row}), "gamePk")
}

func (r *GameRepository) Exists(ctx context.Context, gamePK int64) (bool, error) {
	return r.store.exists(ctx, "games", qb.Eq("gamePk", gamePK))
}

func (r *GameRepository) ReplaceOfficials(ctx context.Context, gamePK int64, rows []game.Official) error {
	return r.store.WithinTx(ctx, func(ctx context.Context) error {
		if err := r.store.deleteGame(ctx, "game_officials", gamePK); err != nil {
			return err
		}
		return insertRows(ctx, r.store, "game_officials", stamped(r.store.prov, rows))
	})
}

func (r *GameRepository) GamePKsBetween(ctx context.Context, start, end string) ([]int64, error) {
	query, args, err := qb.Select("gamePk").From("games").
		Where(qb.Between("gameDate", start, end)).
		OrderBy("gameDate", "gamePk").
		Placeholder(r.store.ph).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select game pks query: %w", err)
	}

	var out []int64
	if err := r.store.conn(ctx).SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select game pks between %s and %s: %w", start, end, err)
	}
	return out, nil
}
