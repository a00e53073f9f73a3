package game

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// Game is one row of the games table. VenueID is nil whenever Season could not be
// parsed, since (venue_id, season) references venues(id, year).
type Game struct {
	GamePK            int64   `db:"gamePk"`
	Season            int64   `db:"season"`
	GameType          *string `db:"gameType"`
	GameDate          *string `db:"gameDate"`
	GameDateTime      *string `db:"gameDateTime"`
	OfficialDate      *string `db:"officialDate"`
	AwayTeamID        *int64  `db:"away_team_id"`
	HomeTeamID        *int64  `db:"home_team_id"`
	AwayScore         *int64  `db:"away_score"`
	HomeScore         *int64  `db:"home_score"`
	AbstractGameState *string `db:"abstractGameState"`
	DetailedState     *string `db:"detailedState"`
	StatusCode        *string `db:"statusCode"`
	VenueID           *int64  `db:"venue_id"`
	DayNight          *string `db:"dayNight"`
	ScheduledInnings  *int64  `db:"scheduledInnings"`
	InningCount       *int64  `db:"inningCount"`
	WeatherCondition  *string `db:"weather_condition"`
	WeatherTemp       *string `db:"weather_temp"`
	WeatherWind       *string `db:"weather_wind"`
	Attendance        *int64  `db:"attendance"`
	FirstPitch        *string `db:"firstPitch"`
	GameEndDateTime   *string `db:"gameEndDateTime"`
	DoubleHeader      *string `db:"doubleHeader"`
	GameNumber        *int64  `db:"gameNumber"`
	SeriesDescription *string `db:"seriesDescription"`
	SeriesGameNumber  *int64  `db:"seriesGameNumber"`
	GamesInSeries     *int64  `db:"gamesInSeries"`
	FetchedAt         string  `db:"_fetched_at"`
	provenance.Stamp
}

// Official is one umpire assignment; (GamePK, OfficialType) is unique.
type Official struct {
	GamePK           int64   `db:"gamePk"`
	OfficialID       *int64  `db:"official_id"`
	OfficialFullName *string `db:"official_fullName"`
	OfficialType     *string `db:"officialType"`
	provenance.Stamp
}
