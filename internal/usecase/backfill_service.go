package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/mlb-stats/internal/domain/game"
	"github.com/riskibarqy/mlb-stats/internal/domain/synclog"
	"github.com/riskibarqy/mlb-stats/internal/platform/id"
	"github.com/riskibarqy/mlb-stats/internal/platform/logging"
)

// ProgressFunc receives the 1-based index of the game just attempted and the total.
type ProgressFunc func(current, total int)

type SyncResult struct {
	Success int
	Failure int
}

// BackfillService drives the per-game collectors over date ranges and records each run
// in sync_log.
type BackfillService struct {
	provider StatsProvider
	games    *GameSyncService
	gameRepo game.Repository
	syncLog  synclog.Repository
	ids      id.Generator
	logger   *logging.Logger
}

func NewBackfillService(
	provider StatsProvider,
	games *GameSyncService,
	gameRepo game.Repository,
	syncLog synclog.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *BackfillService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &BackfillService{
		provider: provider,
		games:    games,
		gameRepo: gameRepo,
		syncLog:  syncLog,
		ids:      ids,
		logger:   logger,
	}
}

// SyncBoxscoresForDateRange runs the boxscore pipeline for every game between start and
// end inclusive. Games already stored in the range are used unless forceRefresh is set;
// otherwise the schedule is fetched.
func (s *BackfillService) SyncBoxscoresForDateRange(ctx context.Context, start, end time.Time, progress ProgressFunc, forceRefresh bool) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.SyncBoxscoresForDateRange")
	defer span.End()

	return s.runRange(ctx, synclog.TypeBoxscore, start, end, progress, forceRefresh, s.games.SyncBoxscore)
}

// SyncPlayByPlayForDateRange runs only the play-by-play collector over the range.
func (s *BackfillService) SyncPlayByPlayForDateRange(ctx context.Context, start, end time.Time, progress ProgressFunc, forceRefresh bool) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.SyncPlayByPlayForDateRange")
	defer span.End()

	return s.runRange(ctx, synclog.TypePlayByPlay, start, end, progress, forceRefresh, s.games.SyncPlayByPlay)
}

// SyncGame runs the boxscore pipeline for a single game and logs it.
func (s *BackfillService) SyncGame(ctx context.Context, gamePK int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackfillService.SyncGame")
	defer span.End()

	logID, runID := s.startLog(ctx, synclog.Entry{SyncType: synclog.TypeBoxscore, GamePK: &gamePK})
	err := s.games.SyncBoxscore(ctx, gamePK)

	result := SyncResult{Success: 1}
	if err != nil {
		result = SyncResult{Failure: 1}
	}
	s.finishLog(ctx, logID, runID, result, err)
	return err
}

func (s *BackfillService) runRange(
	ctx context.Context,
	syncType string,
	start, end time.Time,
	progress ProgressFunc,
	forceRefresh bool,
	collect func(context.Context, int64) error,
) (SyncResult, error) {
	if err := validateRange(start, end); err != nil {
		return SyncResult{}, err
	}

	startDate := start.Format(time.DateOnly)
	endDate := end.Format(time.DateOnly)
	logID, runID := s.startLog(ctx, synclog.Entry{SyncType: syncType, StartDate: &startDate, EndDate: &endDate})
	logger := s.logger.With("run_id", runID, "sync_type", syncType)

	gamePKs, err := s.resolveGamePKs(ctx, start, end, forceRefresh)
	if err != nil {
		s.finishLog(ctx, logID, runID, SyncResult{}, err)
		return SyncResult{}, err
	}
	if len(gamePKs) == 0 {
		logger.WarnContext(ctx, "no games found for date range", "start_date", startDate, "end_date", endDate)
		s.finishLog(ctx, logID, runID, SyncResult{}, nil)
		return SyncResult{}, nil
	}

	logger.InfoContext(ctx, "syncing games", "count", len(gamePKs), "start_date", startDate, "end_date", endDate)

	var result SyncResult
	for i, gamePK := range gamePKs {
		if err := ctx.Err(); err != nil {
			s.finishLog(ctx, logID, runID, result, err)
			return result, err
		}
		if err := collect(ctx, gamePK); err != nil {
			result.Failure++
			logger.WarnContext(ctx, "game sync failed", "game_pk", gamePK, "error", err)
		} else {
			result.Success++
		}
		if progress != nil {
			progress(i+1, len(gamePKs))
		}
	}

	logger.InfoContext(ctx, "date range sync complete", "succeeded", result.Success, "failed", result.Failure)
	s.finishLog(ctx, logID, runID, result, nil)
	return result, nil
}

func (s *BackfillService) resolveGamePKs(ctx context.Context, start, end time.Time, forceRefresh bool) ([]int64, error) {
	if !forceRefresh {
		pks, err := s.gameRepo.GamePKsBetween(ctx, start.Format(time.DateOnly), end.Format(time.DateOnly))
		if err != nil {
			return nil, fmt.Errorf("list stored games: %w", err)
		}
		if len(pks) > 0 {
			return pks, nil
		}
		s.logger.InfoContext(ctx, "no stored games in range, fetching schedule")
	}

	schedule, err := s.provider.Schedule(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	return schedule.GamePks(), nil
}

// startLog writes the started row. Sync log failures never fail the sync itself.
func (s *BackfillService) startLog(ctx context.Context, entry synclog.Entry) (int64, string) {
	runID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate run id failed", "error", err)
	}
	entry.RunID = runID
	if s.syncLog == nil {
		return 0, runID
	}
	logID, err := s.syncLog.Start(ctx, entry)
	if err != nil {
		s.logger.WarnContext(ctx, "write sync log failed", "run_id", runID, "error", err)
		return 0, runID
	}
	return logID, runID
}

func (s *BackfillService) finishLog(ctx context.Context, logID int64, runID string, result SyncResult, runErr error) {
	if s.syncLog == nil || logID == 0 {
		return
	}

	status := synclog.StatusFor(result.Success, result.Failure)
	var errMsg *string
	if runErr != nil {
		status = synclog.StatusFailed
		if result.Success > 0 {
			status = synclog.StatusPartial
		}
		msg := runErr.Error()
		errMsg = &msg
	}

	// The run context may already be cancelled; the closing row should still land.
	ctx = context.WithoutCancel(ctx)
	if err := s.syncLog.Finish(ctx, logID, status, int64(result.Success), errMsg); err != nil {
		s.logger.WarnContext(ctx, "finish sync log failed", "run_id", runID, "error", err)
	}
}
