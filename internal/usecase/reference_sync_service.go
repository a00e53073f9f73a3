package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-stats/internal/domain/player"
	"github.com/riskibarqy/mlb-stats/internal/domain/team"
	"github.com/riskibarqy/mlb-stats/internal/domain/venue"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
	"github.com/riskibarqy/mlb-stats/internal/platform/provenance"
	"github.com/riskibarqy/mlb-stats/internal/transform"
)

// ReferenceSyncService syncs teams, venues and players. Teams and players are always
// fetched from the network; a venue is fetched only when its (id, year) row is missing.
type ReferenceSyncService struct {
	provider   StatsProvider
	tx         TxManager
	teamRepo   team.Repository
	venueRepo  venue.Repository
	playerRepo player.Repository
	prov       *provenance.Provider
	logger     *logging.Logger
}

func NewReferenceSyncService(
	provider StatsProvider,
	tx TxManager,
	teamRepo team.Repository,
	venueRepo venue.Repository,
	playerRepo player.Repository,
	prov *provenance.Provider,
	logger *logging.Logger,
) *ReferenceSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReferenceSyncService{
		provider:   provider,
		tx:         tx,
		teamRepo:   teamRepo,
		venueRepo:  venueRepo,
		playerRepo: playerRepo,
		prov:       prov,
		logger:     logger,
	}
}

func (s *ReferenceSyncService) SyncTeam(ctx context.Context, teamID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.SyncTeam")
	defer func() { endSpan(span, err) }()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	doc, err := s.provider.Team(ctx, teamID)
	if err != nil {
		return fmt.Errorf("fetch team id=%d: %w", teamID, err)
	}
	row := transform.Team(doc, s.prov.Timestamp())
	if err := s.teamRepo.Upsert(ctx, row); err != nil {
		return fmt.Errorf("upsert team id=%d: %w", teamID, err)
	}
	s.logger.DebugContext(ctx, "synced team", "team_id", teamID, "name", row.Name)
	return nil
}

// SyncVenue stores the venue as configured in year. It reports false when the row
// already existed and no fetch was made.
func (s *ReferenceSyncService) SyncVenue(ctx context.Context, venueID int64, year int) (fetched bool, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.SyncVenue")
	defer func() { endSpan(span, err) }()

	if venueID <= 0 || year <= 0 {
		return false, fmt.Errorf("%w: venue id and year must be positive", ErrInvalidInput)
	}

	exists, err := s.venueRepo.Exists(ctx, venueID, year)
	if err != nil {
		return false, fmt.Errorf("check venue id=%d year=%d: %w", venueID, year, err)
	}
	if exists {
		s.logger.DebugContext(ctx, "venue already stored", "venue_id", venueID, "year", year)
		return false, nil
	}

	doc, err := s.provider.Venue(ctx, venueID, year)
	if err != nil {
		return false, fmt.Errorf("fetch venue id=%d year=%d: %w", venueID, year, err)
	}
	if err := s.venueRepo.Upsert(ctx, transform.Venue(doc, year, s.prov.Timestamp())); err != nil {
		return false, fmt.Errorf("upsert venue id=%d year=%d: %w", venueID, year, err)
	}
	return true, nil
}

func (s *ReferenceSyncService) SyncPlayer(ctx context.Context, playerID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.SyncPlayer")
	defer func() { endSpan(span, err) }()

	if playerID <= 0 {
		return fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	doc, err := s.provider.Player(ctx, playerID)
	if err != nil {
		return fmt.Errorf("fetch player id=%d: %w", playerID, err)
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.UpsertPlayers(ctx, []player.Player{transform.Player(doc, s.prov.Timestamp(), nil)})
	})
}

// SyncPlayers fetches ids in one batch request and upserts every player returned.
func (s *ReferenceSyncService) SyncPlayers(ctx context.Context, ids []int64) (synced int, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceSyncService.SyncPlayers")
	defer func() { endSpan(span, err) }()

	rows, err := s.FetchPlayers(ctx, ids)
	if err != nil {
		return 0, err
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.UpsertPlayers(ctx, rows)
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// FetchPlayers fetches and transforms players without writing them.
func (s *ReferenceSyncService) FetchPlayers(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	docs, err := s.provider.Players(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch %d players: %w", len(ids), err)
	}
	fetchedAt := s.prov.Timestamp()
	rows := make([]player.Player, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, transform.Player(doc, fetchedAt, nil))
	}
	rows = dedupePlayers(rows)
	if len(rows) < len(ids) {
		s.logger.WarnContext(ctx, "stats api returned fewer players than requested", "requested", len(ids), "returned", len(rows))
	}
	return rows, nil
}

// UpsertPlayers writes rows after making sure every referenced current team exists.
// A team that cannot be synced is dropped from the player rows instead of failing them.
func (s *ReferenceSyncService) UpsertPlayers(ctx context.Context, rows []player.Player) error {
	rows = dedupePlayers(rows)
	if len(rows) == 0 {
		return nil
	}

	checked := make(map[int64]bool)
	for i := range rows {
		teamID := rows[i].CurrentTeamID
		if teamID == nil {
			continue
		}
		ok, seen := checked[*teamID]
		if !seen {
			ok = s.ensureTeam(ctx, *teamID)
			checked[*teamID] = ok
		}
		if !ok {
			rows[i].CurrentTeamID = nil
		}
	}

	if err := s.playerRepo.Upsert(ctx, rows...); err != nil {
		return fmt.Errorf("upsert %d players: %w", len(rows), err)
	}
	return nil
}

func (s *ReferenceSyncService) ensureTeam(ctx context.Context, teamID int64) bool {
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err == nil && exists {
		return true
	}
	if err == nil {
		err = s.SyncTeam(ctx, teamID)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "cannot resolve player team, storing without it", "team_id", teamID, "error", err)
		return false
	}
	return true
}

// dedupePlayers keeps the last row per player id, in first-seen order.
func dedupePlayers(rows []player.Player) []player.Player {
	index := make(map[int64]int, len(rows))
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		if i, ok := index[row.ID]; ok {
			out[i] = row
			continue
		}
		index[row.ID] = len(out)
		out = append(out, row)
	}
	return out
}
