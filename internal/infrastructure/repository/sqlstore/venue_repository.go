package sqlstore

import (
	"context"

	"github.com/riskibarqy/mlb-stats/internal/domain/venue"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
)

type VenueRepository struct {
	store *Store
}

func NewVenueRepository(store *Store) *VenueRepository {
	return &VenueRepository{store: store}
}

func (r *VenueRepository) Upsert(ctx context.Context, row venue.Venue) error {
	return insertRows(ctx, r.store, "venues", stamped(r.store.prov, []venue.Venue{row}), "id", "year")
}

func (r *VenueRepository) Exists(ctx context.Context, id int64, year int) (bool, error) {
	return r.store.exists(ctx, "venues", qb.Eq("id", id), qb.Eq("year", int64(year)))
}
