package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/mlb-stats/internal/domain/boxscore"
	"github.com/riskibarqy/mlb-stats/internal/domain/game"
	"github.com/riskibarqy/mlb-stats/internal/domain/play"
	"github.com/riskibarqy/mlb-stats/internal/domain/player"
	"github.com/riskibarqy/mlb-stats/internal/domain/roster"
	"github.com/riskibarqy/mlb-stats/internal/domain/team"
	"github.com/riskibarqy/mlb-stats/internal/domain/venue"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/provenance"
	"github.com/riskibarqy/mlb-stats/internal/transform"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// GameRepositories groups the per-game stores written by GameSyncService.
type GameRepositories struct {
	Teams     team.Repository
	Venues    venue.Repository
	Players   player.Repository
	Games     game.Repository
	Boxscores boxscore.Repository
	Plays     play.Repository
	Rosters   roster.Repository
}

// GameSyncService writes one game and everything hanging off it, parents first: venue and
// teams, the game row, players, then stat lines, plays and rosters.
type GameSyncService struct {
	provider StatsProvider
	tx       TxManager
	refs     *ReferenceSyncService
	repos    GameRepositories
	prov     *provenance.Provider
	logger   *logging.Logger
}

func NewGameSyncService(
	provider StatsProvider,
	tx TxManager,
	refs *ReferenceSyncService,
	repos GameRepositories,
	prov *provenance.Provider,
	logger *logging.Logger,
) *GameSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameSyncService{
		provider: provider,
		tx:       tx,
		refs:     refs,
		repos:    repos,
		prov:     prov,
		logger:   logger,
	}
}

// SyncGame stores the game row with its teams, venue and officials in one transaction.
func (s *GameSyncService) SyncGame(ctx context.Context, gamePK int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameSyncService.SyncGame")
	defer func() { endSpan(span, err) }()

	if gamePK <= 0 {
		return fmt.Errorf("%w: gamePk must be positive", ErrInvalidInput)
	}

	err = guard(func() error {
		feed, err := s.provider.GameFeed(ctx, gamePK)
		if err != nil {
			return fmt.Errorf("fetch game feed: %w", err)
		}
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.writeGame(ctx, feed, s.prov.Timestamp())
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "game sync failed", "game_pk", gamePK, "error", err)
		return fmt.Errorf("sync game gamePk=%d: %w", gamePK, err)
	}
	return nil
}

func (s *GameSyncService) writeGame(ctx context.Context, feed upstream.GameFeed, fetchedAt string) error {
	gd := feed.GameData

	if season, ok := feed.Season(); ok && gd.Venue != nil && gd.Venue.ID > 0 {
		exists, err := s.repos.Venues.Exists(ctx, gd.Venue.ID, season)
		if err != nil {
			return fmt.Errorf("check venue id=%d year=%d: %w", gd.Venue.ID, season, err)
		}
		if !exists {
			if err := s.repos.Venues.Upsert(ctx, transform.Venue(*gd.Venue, season, fetchedAt)); err != nil {
				return fmt.Errorf("upsert venue id=%d year=%d: %w", gd.Venue.ID, season, err)
			}
		}
	} else if gd.Venue != nil && gd.Venue.ID > 0 {
		s.logger.WarnContext(ctx, "game season unparseable, storing game without venue", "game_pk", feed.GamePk, "venue_id", gd.Venue.ID)
	}

	teams := make([]team.Team, 0, 2)
	for _, t := range []*upstream.Team{gd.Teams.Away, gd.Teams.Home} {
		if t != nil && t.ID > 0 {
			teams = append(teams, transform.Team(*t, fetchedAt))
		}
	}
	if len(teams) > 0 {
		if err := s.repos.Teams.Upsert(ctx, teams...); err != nil {
			return fmt.Errorf("upsert game teams: %w", err)
		}
	}

	row := transform.Game(feed, fetchedAt)
	if err := s.repos.Games.Upsert(ctx, row); err != nil {
		return fmt.Errorf("upsert game: %w", err)
	}
	if err := s.repos.Games.ReplaceOfficials(ctx, feed.GamePk, transform.Officials(feed)); err != nil {
		return fmt.Errorf("replace officials: %w", err)
	}

	s.logger.InfoContext(ctx, "synced game",
		"game_pk", feed.GamePk,
		"away_score", row.AwayScore,
		"home_score", row.HomeScore,
	)
	return nil
}

// SyncBoxscore is the full per-game pipeline. The game, its players and stat lines commit
// together; play-by-play and rosters then run as separate transactions whose failures are
// logged without undoing the stat lines.
func (s *GameSyncService) SyncBoxscore(ctx context.Context, gamePK int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameSyncService.SyncBoxscore")
	defer func() { endSpan(span, err) }()

	if gamePK <= 0 {
		return fmt.Errorf("%w: gamePk must be positive", ErrInvalidInput)
	}

	var (
		feed upstream.GameFeed
		box  upstream.Boxscore
	)
	err = guard(func() error {
		var err error
		if feed, err = s.provider.GameFeed(ctx, gamePK); err != nil {
			return fmt.Errorf("fetch game feed: %w", err)
		}
		if box, err = s.provider.Boxscore(ctx, gamePK); err != nil {
			return fmt.Errorf("fetch boxscore: %w", err)
		}
		if !box.HasPlayers() {
			return ErrGameNotStarted
		}
		return s.writeBoxscore(ctx, gamePK, feed, box)
	})
	if err != nil {
		if errors.Is(err, ErrGameNotStarted) {
			s.logger.WarnContext(ctx, "no player data in boxscore, game may not have started", "game_pk", gamePK)
		} else {
			s.logger.ErrorContext(ctx, "boxscore sync failed", "game_pk", gamePK, "error", err)
		}
		return fmt.Errorf("sync boxscore gamePk=%d: %w", gamePK, err)
	}

	if err := guard(func() error { return s.writePlays(ctx, feed) }); err != nil {
		s.logger.WarnContext(ctx, "play-by-play sync failed", "game_pk", gamePK, "error", err)
	}

	date, away, home, ok := rosterContext(feed, box)
	if !ok {
		s.logger.WarnContext(ctx, "missing data for roster sync", "game_pk", gamePK, "date", feed.GameDate(), "away_team_id", away, "home_team_id", home)
		return nil
	}
	if err := guard(func() error { return s.syncRosters(ctx, gamePK, date, away, home) }); err != nil {
		s.logger.WarnContext(ctx, "roster sync failed", "game_pk", gamePK, "error", err)
	}
	return nil
}

func (s *GameSyncService) writeBoxscore(ctx context.Context, gamePK int64, feed upstream.GameFeed, box upstream.Boxscore) error {
	fetchedAt := s.prov.Timestamp()
	teamOf := transform.PlayerTeams(box)
	ids := transform.BoxscorePlayerIDs(box)

	rows := make([]player.Player, 0, len(ids))
	var missing []int64
	for _, id := range ids {
		bio, ok := feed.PlayerBio(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		var teamID *int64
		if t, ok := teamOf[id]; ok {
			teamID = &t
		}
		rows = append(rows, transform.Player(bio, fetchedAt, teamID))
	}
	if len(missing) > 0 {
		s.logger.WarnContext(ctx, "players missing from game feed, fetching", "game_pk", gamePK, "count", len(missing))
		fetched, err := s.refs.FetchPlayers(ctx, missing)
		if err != nil {
			return err
		}
		rows = append(rows, fetched...)
	}

	batting := transform.BattingLines(box, gamePK, fetchedAt)
	pitching := transform.PitchingLines(box, gamePK, fetchedAt)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.writeGame(ctx, feed, fetchedAt); err != nil {
			return err
		}
		if err := s.refs.UpsertPlayers(ctx, rows); err != nil {
			return err
		}
		if err := s.repos.Boxscores.ReplaceBatting(ctx, gamePK, batting); err != nil {
			return fmt.Errorf("replace batting: %w", err)
		}
		if err := s.repos.Boxscores.ReplacePitching(ctx, gamePK, pitching); err != nil {
			return fmt.Errorf("replace pitching: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "synced boxscore",
		"game_pk", gamePK,
		"players", len(rows),
		"batting", len(batting),
		"pitching", len(pitching),
	)
	return nil
}

// SyncPlayByPlay replaces the game's at-bats, pitches and batted balls from the live feed.
// The game row must already exist.
func (s *GameSyncService) SyncPlayByPlay(ctx context.Context, gamePK int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameSyncService.SyncPlayByPlay")
	defer func() { endSpan(span, err) }()

	if gamePK <= 0 {
		return fmt.Errorf("%w: gamePk must be positive", ErrInvalidInput)
	}

	err = guard(func() error {
		feed, err := s.provider.GameFeed(ctx, gamePK)
		if err != nil {
			return fmt.Errorf("fetch game feed: %w", err)
		}
		return s.writePlays(ctx, feed)
	})
	if err != nil {
		if errors.Is(err, ErrNoPlays) {
			s.logger.WarnContext(ctx, "no play data, game may not have started", "game_pk", gamePK)
		} else {
			s.logger.ErrorContext(ctx, "play-by-play sync failed", "game_pk", gamePK, "error", err)
		}
		return fmt.Errorf("sync play-by-play gamePk=%d: %w", gamePK, err)
	}
	return nil
}

func (s *GameSyncService) writePlays(ctx context.Context, feed upstream.GameFeed) error {
	allPlays := feed.LiveData.Plays.AllPlays
	if len(allPlays) == 0 {
		return ErrNoPlays
	}

	fetchedAt := s.prov.Timestamp()
	plays := transform.Plays(allPlays, feed.GamePk, fetchedAt)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Ranges resolved from the schedule can name games that were never stored.
		known, err := s.repos.Games.Exists(ctx, feed.GamePk)
		if err != nil {
			return fmt.Errorf("check game: %w", err)
		}
		if !known {
			if err := s.writeGame(ctx, feed, fetchedAt); err != nil {
				return err
			}
		}

		missing, err := s.repos.Players.MissingIDs(ctx, plays.PlayerIDs())
		if err != nil {
			return fmt.Errorf("lookup missing players: %w", err)
		}
		if len(missing) > 0 {
			rows := make([]player.Player, 0, len(missing))
			var unknown []int64
			for _, id := range missing {
				bio, ok := feed.PlayerBio(id)
				if !ok {
					unknown = append(unknown, id)
					continue
				}
				rows = append(rows, transform.Player(bio, fetchedAt, nil))
			}
			fetched, err := s.refs.FetchPlayers(ctx, unknown)
			if err != nil {
				return err
			}
			if err := s.refs.UpsertPlayers(ctx, append(rows, fetched...)); err != nil {
				return err
			}
		}
		if err := s.repos.Plays.ReplaceGame(ctx, feed.GamePk, plays); err != nil {
			return fmt.Errorf("replace plays: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "synced play-by-play",
		"game_pk", feed.GamePk,
		"at_bats", len(plays.AtBats),
		"pitches", len(plays.Pitches),
		"batted_balls", len(plays.BattedBalls),
	)
	return nil
}

// SyncGameRosters replaces the active rosters of both teams as of date. Roster players
// are fetched fresh, one batch per team, and written before the roster rows.
func (s *GameSyncService) SyncGameRosters(ctx context.Context, gamePK int64, date time.Time, awayTeamID, homeTeamID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameSyncService.SyncGameRosters")
	defer func() { endSpan(span, err) }()

	if gamePK <= 0 || awayTeamID <= 0 || homeTeamID <= 0 {
		return fmt.Errorf("%w: gamePk and team ids must be positive", ErrInvalidInput)
	}
	err = guard(func() error { return s.syncRosters(ctx, gamePK, date, awayTeamID, homeTeamID) })
	if err != nil {
		s.logger.ErrorContext(ctx, "roster sync failed", "game_pk", gamePK, "error", err)
		return fmt.Errorf("sync rosters gamePk=%d: %w", gamePK, err)
	}
	return nil
}

// SyncRostersForGame resolves the date and teams from the game feed, stores the game, then
// syncs both rosters.
func (s *GameSyncService) SyncRostersForGame(ctx context.Context, gamePK int64) error {
	if gamePK <= 0 {
		return fmt.Errorf("%w: gamePk must be positive", ErrInvalidInput)
	}
	feed, err := s.provider.GameFeed(ctx, gamePK)
	if err != nil {
		return fmt.Errorf("fetch game feed gamePk=%d: %w", gamePK, err)
	}
	date, away, home, ok := rosterContext(feed, upstream.Boxscore{})
	if !ok {
		return fmt.Errorf("%w: game %d has no date or teams", ErrNotFound, gamePK)
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.writeGame(ctx, feed, s.prov.Timestamp())
	})
	if err != nil {
		return fmt.Errorf("sync game gamePk=%d: %w", gamePK, err)
	}
	return s.SyncGameRosters(ctx, gamePK, date, away, home)
}

func (s *GameSyncService) syncRosters(ctx context.Context, gamePK int64, date time.Time, awayTeamID, homeTeamID int64) error {
	fetchedAt := s.prov.Timestamp()
	var (
		entries []roster.Entry
		players []player.Player
	)
	for _, teamID := range []int64{awayTeamID, homeTeamID} {
		doc, err := s.provider.Roster(ctx, teamID, date)
		if err != nil {
			return fmt.Errorf("fetch roster team_id=%d: %w", teamID, err)
		}
		fetched, err := s.refs.FetchPlayers(ctx, transform.RosterPlayerIDs(doc))
		if err != nil {
			return err
		}
		players = append(players, fetched...)
		entries = append(entries, transform.RosterEntries(doc, gamePK, teamID, fetchedAt)...)
	}

	// Entries whose player could not be fetched would break the players foreign key.
	known := make(map[int64]struct{}, len(players))
	for _, p := range players {
		known[p.ID] = struct{}{}
	}
	kept := entries[:0]
	for _, e := range entries {
		if _, ok := known[e.PlayerID]; ok {
			kept = append(kept, e)
		}
	}
	entries = kept

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.refs.UpsertPlayers(ctx, players); err != nil {
			return err
		}
		if err := s.repos.Rosters.ReplaceGame(ctx, gamePK, entries); err != nil {
			return fmt.Errorf("replace rosters: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		s.logger.WarnContext(ctx, "no roster entries for either team", "game_pk", gamePK)
	}
	s.logger.InfoContext(ctx, "synced rosters", "game_pk", gamePK, "entries", len(entries), "players", len(players))
	return nil
}

// rosterContext returns the game date and team ids, preferring the boxscore's teams.
func rosterContext(feed upstream.GameFeed, box upstream.Boxscore) (date time.Time, away, home int64, ok bool) {
	feedAway, feedHome := feed.TeamIDs()
	away = firstID(box.Teams.Away.Team.ID, feedAway)
	home = firstID(box.Teams.Home.Team.ID, feedHome)

	raw := feed.GameDate()
	if raw == nil {
		return time.Time{}, away, home, false
	}
	date, err := time.Parse(time.DateOnly, *raw)
	if err != nil {
		return time.Time{}, away, home, false
	}
	return date, away, home, away > 0 && home > 0
}

func firstID(ids ...*int64) int64 {
	for _, id := range ids {
		if id != nil && *id > 0 {
			return *id
		}
	}
	return 0
}
