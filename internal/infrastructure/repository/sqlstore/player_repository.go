package sqlstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/mlb-stats/internal/domain/player"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
)

const lookupChunkSize = 500

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Upsert(ctx context.Context, rows ...player.Player) error {
	return insertRows(ctx, r.store, "players", stamped(r.store.prov, rows), "id")
}

func (r *PlayerRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found := make(map[int64]struct{}, len(unique))
	for chunk := range slices.Chunk(unique, lookupChunkSize) {
		query, args, err := qb.Select("id").From("players").
			Where(qb.InInt64("id", chunk)).
			Placeholder(r.store.ph).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build select player ids query: %w", err)
		}

		var existing []int64
		if err := r.store.conn(ctx).SelectContext(ctx, &existing, query, args...); err != nil {
			return nil, fmt.Errorf("select player ids: %w", err)
		}
		for _, id := range existing {
			found[id] = struct{}{}
		}
	}

	missing := make([]int64, 0)
	for _, id := range unique {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
