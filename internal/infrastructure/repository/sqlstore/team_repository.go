package sqlstore

import (
	"context"

	"github.com/riskibarqy/mlb-stats/internal/domain/team"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Upsert(ctx context.Context, rows ...team.Team) error {
	return insertRows(ctx, r.store, "teams", stamped(r.store.prov, rows), "id")
}

func (r *TeamRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.store.exists(ctx, "teams", qb.Eq("id", id))
}
