package transform

import (
	"github.com/riskibarqy/mlb-stats/internal/domain/game"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// Game builds the games row from a live feed. An unparseable season is stored as 0 and
// drops the venue reference.
func Game(feed upstream.GameFeed, fetchedAt string) game.Game {
	gd := feed.GameData
	ld := feed.LiveData

	season, seasonOK := feed.Season()
	var venueID *int64
	if seasonOK && gd.Venue != nil && gd.Venue.ID > 0 {
		venueID = int64Ptr(gd.Venue.ID)
	}
	awayID, homeID := feed.TeamIDs()

	return game.Game{
		GamePK:            feed.GamePk,
		Season:            int64(season),
		GameType:          gd.Game.Type,
		GameDate:          feed.GameDate(),
		GameDateTime:      gd.Datetime.DateTime,
		OfficialDate:      gd.Datetime.OfficialDate,
		AwayTeamID:        awayID,
		HomeTeamID:        homeID,
		AwayScore:         ld.Linescore.Teams.Away.Runs,
		HomeScore:         ld.Linescore.Teams.Home.Runs,
		AbstractGameState: gd.Status.AbstractGameState,
		DetailedState:     gd.Status.DetailedState,
		StatusCode:        gd.Status.StatusCode,
		VenueID:           venueID,
		DayNight:          gd.Datetime.DayNight,
		ScheduledInnings:  firstInt(gd.Game.ScheduledInnings, ld.Linescore.ScheduledInnings),
		InningCount:       ld.Linescore.CurrentInning,
		WeatherCondition:  gd.Weather.Condition,
		WeatherTemp:       gd.Weather.Temp.Ptr(),
		WeatherWind:       gd.Weather.Wind,
		Attendance:        firstInt(attendanceFromInfo(ld.Boxscore.Info), gd.Info.Attendance),
		FirstPitch:        firstNonEmpty(gd.Datetime.FirstPitch, gd.Info.FirstPitch),
		GameEndDateTime:   gd.Datetime.GameEndDateTime,
		DoubleHeader:      gd.Game.DoubleHeader,
		GameNumber:        gd.Game.GameNumber,
		SeriesDescription: gd.Game.SeriesDescription,
		SeriesGameNumber:  gd.Game.SeriesGameNumber,
		GamesInSeries:     gd.Game.GamesInSeries,
		FetchedAt:         fetchedAt,
	}
}

// Officials lists the umpire crew from the feed's boxscore. A repeated officialType
// keeps its first entry.
func Officials(feed upstream.GameFeed) []game.Official {
	officials := feed.LiveData.Boxscore.Officials
	out := make([]game.Official, 0, len(officials))
	seen := make(map[string]struct{}, len(officials))
	for _, o := range officials {
		if o.OfficialType != nil {
			if _, dup := seen[*o.OfficialType]; dup {
				continue
			}
			seen[*o.OfficialType] = struct{}{}
		}
		out = append(out, game.Official{
			GamePK:           feed.GamePk,
			OfficialID:       o.Official.ID,
			OfficialFullName: o.Official.FullName,
			OfficialType:     o.OfficialType,
		})
	}
	return out
}
