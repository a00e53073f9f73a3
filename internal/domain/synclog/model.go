package synclog

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
	StatusFailed    Status = "failed"
)

const (
	TypeBoxscore   = "boxscore"
	TypePlayByPlay = "play_by_play"
)

// Entry records one sync run. RunID correlates the row with log lines of the same run.
type Entry struct {
	ID               int64   `db:"id"`
	RunID            string  `db:"run_id"`
	SyncType         string  `db:"sync_type"`
	StartDate        *string `db:"start_date"`
	EndDate          *string `db:"end_date"`
	GamePK           *int64  `db:"gamePk"`
	Status           Status  `db:"status"`
	RecordsProcessed *int64  `db:"records_processed"`
	ErrorMessage     *string `db:"error_message"`
	StartedAt        string  `db:"started_at"`
	CompletedAt      *string `db:"completed_at"`
	provenance.Stamp
}

// StatusFor maps driver counts to a terminal status.
func StatusFor(success, failure int) Status {
	switch {
	case failure == 0:
		return StatusCompleted
	case success == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}
