package roster

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// Entry is one player on a team's active roster for a game.
type Entry struct {
	GamePK               int64   `db:"gamePk"`
	TeamID               int64   `db:"team_id"`
	PlayerID             int64   `db:"player_id"`
	JerseyNumber         *string `db:"jerseyNumber"`
	PositionCode         *string `db:"position_code"`
	PositionName         *string `db:"position_name"`
	PositionType         *string `db:"position_type"`
	PositionAbbreviation *string `db:"position_abbreviation"`
	StatusCode           *string `db:"status_code"`
	StatusDescription    *string `db:"status_description"`
	FetchedAt            string  `db:"_fetched_at"`
	provenance.Stamp
}
