package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

const fetchedAt = "2024-07-02T00:00:00.000000Z"

func decode[T any](t *testing.T, raw string) T {
	t.Helper()
	doc, err := upstream.Decode[T]([]byte(raw))
	require.NoError(t, err)
	return doc
}

const feedJSON = `{
  "gamePk": 745927,
  "gameData": {
    "game": {"pk": 745927, "type": "R", "doubleHeader": "N", "gameNumber": 1, "season": "2024",
             "seriesDescription": "Regular Season", "seriesGameNumber": 2, "gamesInSeries": 3},
    "datetime": {"dateTime": "2024-07-01T23:05:00Z", "officialDate": "2024-07-01", "dayNight": "night"},
    "status": {"abstractGameState": "Final", "detailedState": "Final", "statusCode": "F"},
    "teams": {"away": {"id": 111, "name": "Boston Red Sox"}, "home": {"id": 147, "name": "New York Yankees"}},
    "venue": {"id": 3313, "name": "Yankee Stadium"},
    "weather": {"condition": "Clear", "temp": "84", "wind": "8 mph, Out To CF"},
    "gameInfo": {"attendance": 40000, "firstPitch": "2024-07-01T23:07:00Z"}
  },
  "liveData": {
    "linescore": {"currentInning": 9, "scheduledInnings": 9,
                  "teams": {"home": {"runs": 5}, "away": {"runs": 3}}},
    "boxscore": {
      "info": [{"label": "WP", "value": "Cole."}, {"label": "Att", "value": "41,287."}],
      "officials": [
        {"official": {"id": 427, "fullName": "Dan Iassogna"}, "officialType": "Home Plate"},
        {"official": {"id": 428, "fullName": "Other"}, "officialType": "Home Plate"},
        {"official": {"id": 500, "fullName": "Base Ump"}, "officialType": "First Base"}
      ]
    }
  }
}`

func TestGameTransform(t *testing.T) {
	feed := decode[upstream.GameFeed](t, feedJSON)
	row := Game(feed, fetchedAt)

	assert.Equal(t, int64(745927), row.GamePK)
	assert.Equal(t, int64(2024), row.Season)
	assert.Equal(t, "2024-07-01", *row.GameDate)
	assert.Equal(t, int64(111), *row.AwayTeamID)
	assert.Equal(t, int64(147), *row.HomeTeamID)
	assert.Equal(t, int64(3), *row.AwayScore)
	assert.Equal(t, int64(5), *row.HomeScore)
	assert.Equal(t, int64(3313), *row.VenueID)
	assert.Equal(t, int64(41287), *row.Attendance)
	assert.Equal(t, "84", *row.WeatherTemp)
	assert.Equal(t, int64(9), *row.InningCount)
	assert.Equal(t, "2024-07-01T23:07:00Z", *row.FirstPitch)
	assert.Equal(t, "Final", *row.AbstractGameState)
	assert.Equal(t, fetchedAt, row.FetchedAt)

	officials := Officials(feed)
	require.Len(t, officials, 2)
	assert.Equal(t, int64(427), *officials[0].OfficialID)
	assert.Equal(t, "First Base", *officials[1].OfficialType)
}

func TestGameTransformInvalidSeasonDropsVenue(t *testing.T) {
	feed := decode[upstream.GameFeed](t, `{
	  "gamePk": 1,
	  "gameData": {
	    "game": {"season": "unknown"},
	    "datetime": {"dateTime": "2024-07-01T23:05:00Z"},
	    "venue": {"id": 3313}
	  }
	}`)

	row := Game(feed, fetchedAt)

	assert.Equal(t, int64(0), row.Season)
	assert.Nil(t, row.VenueID)
	assert.Equal(t, "2024-07-01", *row.GameDate)
	assert.Nil(t, row.Attendance)
	assert.Nil(t, row.AwayTeamID)
}

const boxscoreJSON = `{
  "teams": {
    "away": {
      "team": {"id": 111},
      "pitchers": [657277],
      "players": {
        "ID657277": {
          "person": {"id": 657277, "fullName": "Pitcher One"},
          "position": {"code": "1", "name": "Pitcher", "abbreviation": "P"},
          "stats": {"batting": {}, "pitching": {"inningsPitched": "6.2", "earnedRuns": 2, "hits": 5,
                    "baseOnBalls": 0, "note": "(L, 5-6)"}},
          "gameStatus": {"isStartingPitcher": true}
        }
      }
    },
    "home": {
      "team": {"id": 147},
      "pitchers": [],
      "players": {
        "ID592450": {
          "person": {"id": 592450, "fullName": "Batter One"},
          "battingOrder": "200",
          "position": {"code": "9", "name": "Outfielder", "abbreviation": "RF"},
          "stats": {"batting": {"hits": 2, "atBats": 4, "totalBases": 5, "baseOnBalls": 0,
                    "hitByPitch": 0, "sacFlies": 0, "homeRuns": 1}, "pitching": {}}
        }
      }
    }
  }
}`

func TestBoxscoreTransforms(t *testing.T) {
	box := decode[upstream.Boxscore](t, boxscoreJSON)

	assert.Equal(t, []int64{592450, 657277}, BoxscorePlayerIDs(box))
	assert.Equal(t, map[int64]int64{657277: 111, 592450: 147}, PlayerTeams(box))

	batting := BattingLines(box, 745927, fetchedAt)
	require.Len(t, batting, 1)
	b := batting[0]
	assert.Equal(t, int64(592450), b.PlayerID)
	assert.Equal(t, int64(147), *b.TeamID)
	assert.Equal(t, int64(200), *b.BattingOrder)
	assert.Equal(t, "RF", *b.PositionAbbreviation)
	assert.Equal(t, "0.500", *b.Avg)
	assert.Equal(t, "0.500", *b.OBP)
	assert.Equal(t, "1.250", *b.SLG)
	assert.Equal(t, "1.750", *b.OPS)
	assert.Equal(t, "4.00", *b.AtBatsPerHomeRun)

	pitching := PitchingLines(box, 745927, fetchedAt)
	require.Len(t, pitching, 1)
	p := pitching[0]
	assert.Equal(t, int64(657277), p.PlayerID)
	assert.Equal(t, int64(1), p.IsStartingPitcher)
	assert.Equal(t, int64(1), *p.PitchingOrder)
	assert.Equal(t, "6.2", *p.InningsPitched)
	assert.InDelta(t, 6.6667, *p.InningsPitchedDecimal, 1e-3)
	assert.Equal(t, "2.70", *p.ERA)
	assert.Equal(t, "0.75", *p.WHIP)
	assert.Equal(t, "(L, 5-6)", *p.Note)
}

const playsJSON = `{
  "allPlays": [
    {
      "result": {"type": "atBat", "event": "Single", "eventType": "single", "rbi": 0, "awayScore": 0, "homeScore": 0},
      "about": {"atBatIndex": 0, "halfInning": "top", "inning": 1, "isComplete": true, "hasOut": false},
      "count": {"balls": 2, "strikes": 1, "outs": 0},
      "matchup": {"batter": {"id": 592450}, "pitcher": {"id": 657277},
                  "batSide": {"code": "R"}, "pitchHand": {"code": "R"}},
      "playEvents": [
        {"isPitch": true, "pitchNumber": 1, "details": {"isInPlay": false, "isBall": true, "call": {"code": "B"}},
         "pitchData": {"startSpeed": 95.1, "coordinates": {"pX": 0.5, "pZ": 2.1}, "breaks": {"spinRate": 2300}}},
        {"isPitch": true, "pitchNumber": 2, "details": {"isInPlay": false, "isStrike": true, "call": {"code": "C"}}},
        {"isPitch": false, "type": "pickoff", "details": {"description": "Pickoff Attempt 1B"}},
        {"isPitch": true, "pitchNumber": 3, "details": {"isInPlay": false, "isBall": true}},
        {"isPitch": true, "pitchNumber": 4, "playId": "abc-4", "details": {"isInPlay": true, "call": {"code": "X"}},
         "hitData": {"launchSpeed": 101.2, "launchAngle": 12, "trajectory": "line_drive", "location": 8,
                     "coordinates": {"coordX": 120.5, "coordY": 80.1}}}
      ]
    },
    {
      "result": {"type": "action", "event": "Stolen Base 2B"},
      "about": {"atBatIndex": 1},
      "playEvents": []
    },
    {
      "result": {"type": "atBat", "event": "Strikeout"},
      "about": {"atBatIndex": 2, "inning": 1, "halfInning": "top"},
      "matchup": {"batter": {"id": 600000}, "pitcher": {"id": 657277}},
      "playEvents": [
        {"isPitch": true, "pitchNumber": 1, "details": {"isInPlay": false, "isStrike": true}},
        {"isPitch": true, "pitchNumber": 2, "details": {"isInPlay": false, "isStrike": true}},
        {"isPitch": true, "pitchNumber": 3, "details": {"isInPlay": false, "isStrike": true}}
      ]
    }
  ]
}`

func TestPlaysTransformLinksBattedBallToLastInPlayPitch(t *testing.T) {
	pbp := decode[upstream.PlayByPlay](t, playsJSON)

	plays := Plays(pbp.AllPlays, 745927, fetchedAt)

	require.Len(t, plays.AtBats, 2)
	require.Len(t, plays.Pitches, 7)
	require.Len(t, plays.BattedBalls, 1)

	first := plays.AtBats[0]
	assert.Equal(t, int64(4), first.PitchCount)
	assert.Equal(t, int64(1), *first.IsComplete)
	assert.Equal(t, int64(0), *first.HasOut)
	assert.Nil(t, first.HasReview)

	pitch := plays.Pitches[0]
	assert.Equal(t, 0.5, *pitch.PlateX)
	assert.Equal(t, 2300.0, *pitch.SpinRate)
	assert.Equal(t, int64(1), *pitch.IsBall)
	assert.Nil(t, pitch.IsStrike)

	bb := plays.BattedBalls[0]
	assert.Equal(t, int64(4), *bb.PitchNumber)
	assert.Equal(t, int64(0), *bb.AtBatIndex)
	assert.Equal(t, "8", *bb.Location)
	assert.Equal(t, "Single", *bb.Event)
	assert.Equal(t, "abc-4", *bb.PlayID)
	assert.Equal(t, 120.5, *bb.CoordinatesX)

	assert.Equal(t, []int64{592450, 657277, 600000}, plays.PlayerIDs())
}

func TestRosterEntries(t *testing.T) {
	r := decode[upstream.Roster](t, `{
	  "teamId": 147,
	  "roster": [
	    {"person": {"id": 592450}, "jerseyNumber": "99", "position": {"code": "9", "type": "Outfielder"},
	     "status": {"code": "A", "description": "Active"}},
	    {"person": {}, "jerseyNumber": "1"},
	    {"person": {"id": 592450}, "jerseyNumber": "99"}
	  ]
	}`)

	rows := RosterEntries(r, 745927, 147, fetchedAt)
	require.Len(t, rows, 1)
	assert.Equal(t, "99", *rows[0].JerseyNumber)
	assert.Equal(t, "Active", *rows[0].StatusDescription)
	assert.Equal(t, []int64{592450}, RosterPlayerIDs(r))
}

func TestPlayerTransformTeamOverride(t *testing.T) {
	people := decode[upstream.PeopleResponse](t, `{"people": [{"id": 592450, "fullName": "Aaron Judge",
	  "primaryNumber": "99", "active": true, "currentTeam": {"id": 147},
	  "primaryPosition": {"code": "9", "abbreviation": "RF"}, "batSide": {"code": "R"}}]}`)

	row := Player(people.People[0], fetchedAt, nil)
	assert.Equal(t, int64(147), *row.CurrentTeamID)
	assert.Equal(t, int64(1), row.Active)
	assert.Equal(t, "99", *row.PrimaryNumber)
	assert.Equal(t, "RF", *row.PrimaryPositionAbbreviation)
	assert.Nil(t, row.LastPlayedDate)

	override := int64(111)
	row = Player(people.People[0], fetchedAt, &override)
	assert.Equal(t, int64(111), *row.CurrentTeamID)
}

func TestVenueTransformKeepsYear(t *testing.T) {
	venues := decode[upstream.VenuesResponse](t, `{"venues": [{"id": 22, "name": "Dodger Stadium", "active": true,
	  "location": {"city": "Los Angeles", "defaultCoordinates": {"latitude": 34.07, "longitude": -118.24}, "elevation": 515},
	  "timeZone": {"id": "America/Los_Angeles", "offset": -7, "tz": "PDT"},
	  "fieldInfo": {"capacity": 56000, "turfType": "Grass", "center": 395}}]}`)

	row := Venue(venues.Venues[0], 2025, fetchedAt)
	assert.Equal(t, int64(22), row.ID)
	assert.Equal(t, int64(2025), row.Year)
	assert.Equal(t, int64(1), *row.Active)
	assert.Equal(t, 34.07, *row.Latitude)
	assert.Equal(t, "America/Los_Angeles", *row.TimeZoneID)
	assert.Equal(t, int64(395), *row.Center)
	assert.Nil(t, row.RoofType)
}
