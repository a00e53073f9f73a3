package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/mlb-stats/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/mlb-stats/internal/platform/id"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/provenance"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

var fixedAt = time.Date(2024, 7, 2, 3, 4, 5, 0, time.UTC)

type collectors struct {
	store    *sqlstore.Store
	refs     *ReferenceSyncService
	games    *GameSyncService
	backfill *BackfillService
}

func newCollectors(t *testing.T, provider StatsProvider) collectors {
	t.Helper()

	target, err := sqlstore.ResolveTarget("", filepath.Join(t.TempDir(), "mlb_stats.db"), false)
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(target))

	prov := provenance.Fixed("abc1234", "1.0.0-test", fixedAt)
	store, err := sqlstore.Open(context.Background(), target, prov)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := logging.NewNop()
	teams := sqlstore.NewTeamRepository(store)
	venues := sqlstore.NewVenueRepository(store)
	players := sqlstore.NewPlayerRepository(store)
	gameRepo := sqlstore.NewGameRepository(store)

	refs := NewReferenceSyncService(provider, store, teams, venues, players, prov, logger)
	games := NewGameSyncService(provider, store, refs, GameRepositories{
		Teams:     teams,
		Venues:    venues,
		Players:   players,
		Games:     gameRepo,
		Boxscores: sqlstore.NewBoxscoreRepository(store),
		Plays:     sqlstore.NewPlayRepository(store),
		Rosters:   sqlstore.NewRosterRepository(store),
	}, prov, logger)
	backfill := NewBackfillService(provider, games, gameRepo, sqlstore.NewSyncLogRepository(store), id.Static("run-1"), logger)

	return collectors{store: store, refs: refs, games: games, backfill: backfill}
}

func (c collectors) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, c.store.DB().Get(&n, `SELECT COUNT(*) FROM "`+table+`"`))
	return n
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return raw
}

func loadFixture[T any](t *testing.T, name string) T {
	t.Helper()
	doc, err := upstream.Decode[T](readFixture(t, name))
	require.NoError(t, err)
	return doc
}

func strp(v string) *string { return &v }
