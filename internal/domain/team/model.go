package team

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// Team is one row of the teams table. Column names follow the stats API field names.
type Team struct {
	ID              int64   `db:"id"`
	Name            *string `db:"name"`
	TeamCode        *string `db:"teamCode"`
	FileCode        *string `db:"fileCode"`
	Abbreviation    *string `db:"abbreviation"`
	TeamName        *string `db:"teamName"`
	LocationName    *string `db:"locationName"`
	FirstYearOfPlay *string `db:"firstYearOfPlay"`
	LeagueID        *int64  `db:"league_id"`
	LeagueName      *string `db:"league_name"`
	DivisionID      *int64  `db:"division_id"`
	DivisionName    *string `db:"division_name"`
	VenueID         *int64  `db:"venue_id"`
	Active          int64   `db:"active"`
	FetchedAt       string  `db:"_fetched_at"`
	provenance.Stamp
}
