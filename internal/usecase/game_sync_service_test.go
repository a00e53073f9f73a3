package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/mlb-stats/internal/mocks/statsmock"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

const testGamePK = int64(745927)

func onGameDate(d time.Time) bool {
	return d.Format(time.DateOnly) == "2024-07-01"
}

func expectGameDocuments(t *testing.T, provider *statsmock.StatsProvider) {
	t.Helper()
	provider.On("GameFeed", mock.Anything, testGamePK).Return(loadFixture[upstream.GameFeed](t, "game_feed_745927.json"), nil)
	provider.On("Boxscore", mock.Anything, testGamePK).Return(loadFixture[upstream.Boxscore](t, "boxscore_745927.json"), nil)
}

func expectRosters(t *testing.T, provider *statsmock.StatsProvider) {
	t.Helper()
	provider.On("Roster", mock.Anything, int64(147), mock.MatchedBy(onGameDate)).Return(loadFixture[upstream.Roster](t, "roster_147.json"), nil)
	provider.On("Roster", mock.Anything, int64(111), mock.MatchedBy(onGameDate)).Return(loadFixture[upstream.Roster](t, "roster_111.json"), nil)
	provider.On("Players", mock.Anything, []int64{592450}).Return(loadFixture[upstream.PeopleResponse](t, "people_592450.json").People, nil)
	provider.On("Players", mock.Anything, []int64{519242}).Return(loadFixture[upstream.PeopleResponse](t, "people_519242.json").People, nil)
}

func TestGameSyncService_SyncBoxscore_EmptyBoxscoreWritesNothing(t *testing.T) {
	t.Parallel()

	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)

	provider.On("GameFeed", mock.Anything, testGamePK).Return(loadFixture[upstream.GameFeed](t, "game_feed_745927.json"), nil).Once()
	provider.On("Boxscore", mock.Anything, testGamePK).Return(upstream.Boxscore{}, nil).Once()

	err := c.games.SyncBoxscore(context.Background(), testGamePK)
	if !errors.Is(err, ErrGameNotStarted) {
		t.Fatalf("expected ErrGameNotStarted, got %v", err)
	}
	for _, table := range []string{"game_batting", "game_pitching", "players", "games"} {
		assert.Equal(t, 0, c.count(t, table), table)
	}
}

func TestGameSyncService_SyncBoxscore_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)
	expectGameDocuments(t, provider)
	expectRosters(t, provider)

	tables := []string{"teams", "venues", "games", "game_officials", "players", "game_batting", "game_pitching", "at_bats", "pitches", "batted_balls", "game_rosters"}

	require.NoError(t, c.games.SyncBoxscore(ctx, testGamePK))
	first := make(map[string]int, len(tables))
	for _, table := range tables {
		first[table] = c.count(t, table)
	}
	var firstOPS string
	require.NoError(t, c.store.DB().Get(&firstOPS, `SELECT "ops" FROM "game_batting" WHERE "player_id" = 592450`))

	require.NoError(t, c.games.SyncBoxscore(ctx, testGamePK))
	for _, table := range tables {
		assert.Equal(t, first[table], c.count(t, table), table)
	}
	var secondOPS string
	require.NoError(t, c.store.DB().Get(&secondOPS, `SELECT "ops" FROM "game_batting" WHERE "player_id" = 592450`))
	assert.Equal(t, firstOPS, secondOPS)

	assert.Equal(t, 2, first["teams"])
	assert.Equal(t, 1, first["venues"])
	assert.Equal(t, 2, first["players"])
	assert.Equal(t, 1, first["game_batting"])
	assert.Equal(t, 1, first["game_pitching"])
	assert.Equal(t, 2, first["game_officials"])
	assert.Equal(t, 2, first["game_rosters"])
	assert.Equal(t, "1.750", firstOPS)
}

func TestGameSyncService_SyncBoxscore_RosterFailureKeepsStatLines(t *testing.T) {
	t.Parallel()

	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)
	expectGameDocuments(t, provider)
	provider.On("Roster", mock.Anything, int64(111), mock.Anything).Return(upstream.Roster{}, errors.New("stats api down")).Once()

	require.NoError(t, c.games.SyncBoxscore(context.Background(), testGamePK))
	assert.Equal(t, 1, c.count(t, "game_batting"))
	assert.Equal(t, 2, c.count(t, "at_bats"))
	assert.Equal(t, 0, c.count(t, "game_rosters"))
}

func TestGameSyncService_SyncGame_UnparseableSeasonDropsVenue(t *testing.T) {
	t.Parallel()

	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)

	feed := loadFixture[upstream.GameFeed](t, "game_feed_745927.json")
	bad := upstream.Text("20x4")
	feed.GameData.Game.Season = &bad
	provider.On("GameFeed", mock.Anything, testGamePK).Return(feed, nil).Once()

	require.NoError(t, c.games.SyncGame(context.Background(), testGamePK))

	assert.Equal(t, 0, c.count(t, "venues"))
	var venueID *int64
	require.NoError(t, c.store.DB().Get(&venueID, `SELECT "venue_id" FROM "games" WHERE "gamePk" = ?`, testGamePK))
	assert.Nil(t, venueID)
}

func TestGameSyncService_SyncGame_PanicBecomesError(t *testing.T) {
	t.Parallel()

	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)

	provider.
		On("GameFeed", mock.Anything, testGamePK).
		Run(func(mock.Arguments) { panic("unexpected document") }).
		Return(upstream.GameFeed{}, nil).
		Once()

	err := c.games.SyncGame(context.Background(), testGamePK)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected document")
	assert.Equal(t, 0, c.count(t, "games"))
}

func TestGameSyncService_SyncPlayByPlay_NoPlays(t *testing.T) {
	t.Parallel()

	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)

	provider.On("GameFeed", mock.Anything, testGamePK).Return(upstream.GameFeed{GamePk: testGamePK}, nil).Once()

	if err := c.games.SyncPlayByPlay(context.Background(), testGamePK); !errors.Is(err, ErrNoPlays) {
		t.Fatalf("expected ErrNoPlays, got %v", err)
	}
}

func TestGameSyncService_SyncPlayByPlay_AddsMissingPlayersFromFeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := statsmock.NewStatsProvider(t)
	c := newCollectors(t, provider)
	provider.On("GameFeed", mock.Anything, testGamePK).Return(loadFixture[upstream.GameFeed](t, "game_feed_745927.json"), nil)

	require.NoError(t, c.games.SyncGame(ctx, testGamePK))
	require.Equal(t, 0, c.count(t, "players"))

	require.NoError(t, c.games.SyncPlayByPlay(ctx, testGamePK))
	require.NoError(t, c.games.SyncPlayByPlay(ctx, testGamePK))

	assert.Equal(t, 2, c.count(t, "players"))
	assert.Equal(t, 2, c.count(t, "at_bats"))
	assert.Equal(t, 7, c.count(t, "pitches"))
	assert.Equal(t, 1, c.count(t, "batted_balls"))

	var pitchNumber int64
	require.NoError(t, c.store.DB().Get(&pitchNumber, `SELECT "pitchNumber" FROM "batted_balls" WHERE "gamePk" = ?`, testGamePK))
	assert.Equal(t, int64(4), pitchNumber)
}

func TestGameSyncService_SyncGameRosters_InvalidInput(t *testing.T) {
	t.Parallel()

	c := newCollectors(t, statsmock.NewStatsProvider(t))
	err := c.games.SyncGameRosters(context.Background(), testGamePK, time.Now(), 0, 147)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
