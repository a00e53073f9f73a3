package upstream

// PlayByPlay is the standalone v1 playByPlay document.
type PlayByPlay struct {
	AllPlays []Play `json:"allPlays"`
}

type Play struct {
	Result     PlayResult  `json:"result"`
	About      PlayAbout   `json:"about"`
	Count      Count       `json:"count"`
	Matchup    Matchup     `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
}

const PlayTypeAtBat = "atBat"

// IsAtBat reports whether the play is a plate appearance (as opposed to, say, a
// stolen-base-only action).
func (p Play) IsAtBat() bool {
	return p.Result.Type != nil && *p.Result.Type == PlayTypeAtBat
}

type PlayResult struct {
	Type        *string `json:"type"`
	Event       *string `json:"event"`
	EventType   *string `json:"eventType"`
	Description *string `json:"description"`
	RBI         *int64  `json:"rbi"`
	AwayScore   *int64  `json:"awayScore"`
	HomeScore   *int64  `json:"homeScore"`
}

type PlayAbout struct {
	AtBatIndex    *int64  `json:"atBatIndex"`
	HalfInning    *string `json:"halfInning"`
	IsTopInning   *bool   `json:"isTopInning"`
	Inning        *int64  `json:"inning"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	IsComplete    *bool   `json:"isComplete"`
	IsScoringPlay *bool   `json:"isScoringPlay"`
	HasReview     *bool   `json:"hasReview"`
	HasOut        *bool   `json:"hasOut"`
}

type Count struct {
	Balls   *int64 `json:"balls"`
	Strikes *int64 `json:"strikes"`
	Outs    *int64 `json:"outs"`
}

type Matchup struct {
	Batter    PersonRef       `json:"batter"`
	Pitcher   PersonRef       `json:"pitcher"`
	BatSide   CodeDescription `json:"batSide"`
	PitchHand CodeDescription `json:"pitchHand"`
}

type PlayEvent struct {
	Details     EventDetails `json:"details"`
	Count       Count        `json:"count"`
	PitchData   *PitchData   `json:"pitchData"`
	HitData     *HitData     `json:"hitData"`
	Index       *int64       `json:"index"`
	PlayID      *string      `json:"playId"`
	PitchNumber *int64       `json:"pitchNumber"`
	StartTime   *string      `json:"startTime"`
	EndTime     *string      `json:"endTime"`
	IsPitch     *bool        `json:"isPitch"`
	Type        *string      `json:"type"`
}

func (e PlayEvent) Pitch() bool {
	return e.IsPitch != nil && *e.IsPitch
}

func (e PlayEvent) InPlay() bool {
	return e.Details.IsInPlay != nil && *e.Details.IsInPlay
}

type EventDetails struct {
	Call        CodeDescription `json:"call"`
	Description *string         `json:"description"`
	Code        *string         `json:"code"`
	IsInPlay    *bool           `json:"isInPlay"`
	IsStrike    *bool           `json:"isStrike"`
	IsBall      *bool           `json:"isBall"`
	Type        CodeDescription `json:"type"`
}

type PitchData struct {
	StartSpeed       *float64         `json:"startSpeed"`
	EndSpeed         *float64         `json:"endSpeed"`
	StrikeZoneTop    *float64         `json:"strikeZoneTop"`
	StrikeZoneBottom *float64         `json:"strikeZoneBottom"`
	TypeConfidence   *float64         `json:"typeConfidence"`
	PlateTime        *float64         `json:"plateTime"`
	Extension        *float64         `json:"extension"`
	Zone             *int64           `json:"zone"`
	Coordinates      PitchCoordinates `json:"coordinates"`
	Breaks           PitchBreaks      `json:"breaks"`
}

type PitchCoordinates struct {
	AX   *float64 `json:"aX"`
	AY   *float64 `json:"aY"`
	AZ   *float64 `json:"aZ"`
	PfxX *float64 `json:"pfxX"`
	PfxZ *float64 `json:"pfxZ"`
	PX   *float64 `json:"pX"`
	PZ   *float64 `json:"pZ"`
	VX0  *float64 `json:"vX0"`
	VY0  *float64 `json:"vY0"`
	VZ0  *float64 `json:"vZ0"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	X0   *float64 `json:"x0"`
	Y0   *float64 `json:"y0"`
	Z0   *float64 `json:"z0"`
}

type PitchBreaks struct {
	BreakAngle    *float64 `json:"breakAngle"`
	BreakLength   *float64 `json:"breakLength"`
	BreakY        *float64 `json:"breakY"`
	SpinRate      *float64 `json:"spinRate"`
	SpinDirection *float64 `json:"spinDirection"`
}

type HitData struct {
	LaunchSpeed    *float64       `json:"launchSpeed"`
	LaunchAngle    *float64       `json:"launchAngle"`
	TotalDistance  *float64       `json:"totalDistance"`
	Trajectory     *string        `json:"trajectory"`
	Hardness       *string        `json:"hardness"`
	Location       *Text          `json:"location"`
	Coordinates    HitCoordinates `json:"coordinates"`
	HitProbability *float64       `json:"hitProbability"`
	BatSpeed       *float64       `json:"batSpeed"`
	IsBarrel       *bool          `json:"isBarrel"`
	IsSwordSwing   *bool          `json:"isSwordSwing"`
}

type HitCoordinates struct {
	CoordX *float64 `json:"coordX"`
	CoordY *float64 `json:"coordY"`
}
