package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/mlb-stats/internal/domain/synclog"
	qb "github.com/riskibarqy/mlb-stats/internal/platform/querybuilder"
)

type SyncLogRepository struct {
	store *Store
}

func NewSyncLogRepository(store *Store) *SyncLogRepository {
	return &SyncLogRepository{store: store}
}

func (r *SyncLogRepository) Start(ctx context.Context, entry synclog.Entry) (int64, error) {
	stamp := r.store.prov.Stamp()
	if entry.StartedAt == "" {
		entry.StartedAt = stamp.WrittenAt
	}
	if entry.Status == "" {
		entry.Status = synclog.StatusStarted
	}

	query, args, err := qb.InsertInto("sync_log").
		Columns("run_id", "sync_type", "start_date", "end_date", "gamePk", "status", "started_at",
			"_written_at", "_git_hash", "_version").
		Values(entry.RunID, entry.SyncType, deref(entry.StartDate), deref(entry.EndDate), deref(entry.GamePK), string(entry.Status), entry.StartedAt,
			stamp.WrittenAt, stamp.GitHash, stamp.Version).
		Suffix("RETURNING id").
		Placeholder(r.store.ph).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert sync_log query: %w", err)
	}

	var id int64
	if err := r.store.conn(ctx).GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert sync_log: %w", err)
	}
	return id, nil
}

func (r *SyncLogRepository) Finish(ctx context.Context, id int64, status synclog.Status, records int64, errMsg *string) error {
	stamp := r.store.prov.Stamp()
	query, args, err := qb.Update("sync_log").
		Set("status", string(status)).
		Set("records_processed", records).
		Set("error_message", deref(errMsg)).
		Set("completed_at", stamp.WrittenAt).
		Set("_written_at", stamp.WrittenAt).
		Set("_git_hash", stamp.GitHash).
		Set("_version", stamp.Version).
		Where(qb.Eq("id", id)).
		Placeholder(r.store.ph).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update sync_log query: %w", err)
	}

	if _, err := r.store.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("finish sync_log %d: %w", id, err)
	}
	return nil
}

func (r *SyncLogRepository) Latest(ctx context.Context, limit int) ([]synclog.Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	query, args, err := qb.Select("*").From("sync_log").
		OrderBy("id DESC").
		Limit(limit).
		Placeholder(r.store.ph).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select sync_log query: %w", err)
	}

	var out []synclog.Entry
	if err := r.store.conn(ctx).SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select sync_log: %w", err)
	}
	return out, nil
}
