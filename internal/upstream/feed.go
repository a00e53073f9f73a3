package upstream

import "strconv"

// GameFeed is the v1.1 live feed: game metadata plus the embedded boxscore and plays.
type GameFeed struct {
	GamePk   int64    `json:"gamePk" validate:"required,gt=0"`
	GameData GameData `json:"gameData"`
	LiveData LiveData `json:"liveData"`
}

type GameData struct {
	Game     GameInfo          `json:"game"`
	Datetime GameDatetime      `json:"datetime"`
	Status   GameStatus        `json:"status"`
	Teams    FeedTeams         `json:"teams" validate:"-"`
	Players  map[string]Person `json:"players" validate:"-"`
	Venue    *Venue            `json:"venue" validate:"-"`
	Weather  Weather           `json:"weather"`
	Info     FeedGameInfo      `json:"gameInfo"`
}

type GameInfo struct {
	Pk                *int64  `json:"pk"`
	Type              *string `json:"type"`
	DoubleHeader      *string `json:"doubleHeader"`
	GameNumber        *int64  `json:"gameNumber"`
	Season            *Text   `json:"season"`
	ScheduledInnings  *int64  `json:"scheduledInnings"`
	SeriesDescription *string `json:"seriesDescription"`
	SeriesGameNumber  *int64  `json:"seriesGameNumber"`
	GamesInSeries     *int64  `json:"gamesInSeries"`
}

type GameDatetime struct {
	DateTime        *string `json:"dateTime"`
	OriginalDate    *string `json:"originalDate"`
	OfficialDate    *string `json:"officialDate"`
	DayNight        *string `json:"dayNight"`
	FirstPitch      *string `json:"firstPitch"`
	GameEndDateTime *string `json:"gameEndDateTime"`
}

type FeedTeams struct {
	Away *Team `json:"away"`
	Home *Team `json:"home"`
}

type Weather struct {
	Condition *string `json:"condition"`
	Temp      *Text   `json:"temp"`
	Wind      *string `json:"wind"`
}

type FeedGameInfo struct {
	Attendance *int64  `json:"attendance"`
	FirstPitch *string `json:"firstPitch"`
}

type LiveData struct {
	Plays     Plays     `json:"plays"`
	Linescore Linescore `json:"linescore"`
	Boxscore  Boxscore  `json:"boxscore"`
}

type Plays struct {
	AllPlays []Play `json:"allPlays"`
}

type Linescore struct {
	CurrentInning    *int64         `json:"currentInning"`
	ScheduledInnings *int64         `json:"scheduledInnings"`
	Teams            LinescoreTeams `json:"teams"`
}

type LinescoreTeams struct {
	Home LinescoreTeam `json:"home"`
	Away LinescoreTeam `json:"away"`
}

type LinescoreTeam struct {
	Runs *int64 `json:"runs"`
}

// Season parses gameData.game.season; ok is false unless it is a positive integer.
func (f GameFeed) Season() (int, bool) {
	if f.GameData.Game.Season == nil {
		return 0, false
	}
	season, err := strconv.Atoi(string(*f.GameData.Game.Season))
	if err != nil || season <= 0 {
		return 0, false
	}
	return season, true
}

// GameDate is officialDate, falling back to the date part of dateTime.
func (f GameFeed) GameDate() *string {
	dt := f.GameData.Datetime
	if dt.OfficialDate != nil && *dt.OfficialDate != "" {
		return dt.OfficialDate
	}
	if dt.DateTime != nil && len(*dt.DateTime) >= 10 {
		d := (*dt.DateTime)[:10]
		return &d
	}
	return nil
}

// TeamIDs returns the away and home team ids when present.
func (f GameFeed) TeamIDs() (away, home *int64) {
	if t := f.GameData.Teams.Away; t != nil && t.ID > 0 {
		id := t.ID
		away = &id
	}
	if t := f.GameData.Teams.Home; t != nil && t.ID > 0 {
		id := t.ID
		home = &id
	}
	return away, home
}

// PlayerBio looks up a player's bio from the feed's "ID<n>" keyed player map.
func (f GameFeed) PlayerBio(id int64) (Person, bool) {
	p, ok := f.GameData.Players["ID"+strconv.FormatInt(id, 10)]
	return p, ok
}

// StatusProbe is the minimal shape needed to decide whether a cached game document is final.
type StatusProbe struct {
	GameData struct {
		Status GameStatus `json:"status"`
	} `json:"gameData"`
	Status GameStatus `json:"status"`
}

func (p StatusProbe) IsFinal() bool {
	return p.GameData.Status.IsFinal() || p.Status.IsFinal()
}
