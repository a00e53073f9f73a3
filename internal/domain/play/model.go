package play

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// AtBat is one plate appearance; (GamePK, AtBatIndex) is unique.
type AtBat struct {
	GamePK        int64   `db:"gamePk"`
	AtBatIndex    *int64  `db:"atBatIndex"`
	Inning        *int64  `db:"inning"`
	HalfInning    *string `db:"halfInning"`
	BatterID      *int64  `db:"batter_id"`
	PitcherID     *int64  `db:"pitcher_id"`
	BatSideCode   *string `db:"batSide_code"`
	PitchHandCode *string `db:"pitchHand_code"`
	Event         *string `db:"event"`
	EventType     *string `db:"eventType"`
	Description   *string `db:"description"`
	RBI           *int64  `db:"rbi"`
	AwayScore     *int64  `db:"awayScore"`
	HomeScore     *int64  `db:"homeScore"`
	IsComplete    *int64  `db:"isComplete"`
	HasReview     *int64  `db:"hasReview"`
	HasOut        *int64  `db:"hasOut"`
	IsScoringPlay *int64  `db:"isScoringPlay"`
	Balls         *int64  `db:"balls"`
	Strikes       *int64  `db:"strikes"`
	Outs          *int64  `db:"outs"`
	StartTime     *string `db:"startTime"`
	EndTime       *string `db:"endTime"`
	PitchCount    int64   `db:"pitchCount"`
	FetchedAt     string  `db:"_fetched_at"`
	provenance.Stamp
}

// Pitch is one pitch event; (GamePK, AtBatIndex, PitchNumber) is unique. The count
// columns hold the count after the pitch.
type Pitch struct {
	GamePK           int64    `db:"gamePk"`
	AtBatIndex       *int64   `db:"atBatIndex"`
	PitchNumber      *int64   `db:"pitchNumber"`
	Inning           *int64   `db:"inning"`
	HalfInning       *string  `db:"halfInning"`
	BatterID         *int64   `db:"batter_id"`
	PitcherID        *int64   `db:"pitcher_id"`
	BatSideCode      *string  `db:"batSide_code"`
	PitchHandCode    *string  `db:"pitchHand_code"`
	Balls            *int64   `db:"balls"`
	Strikes          *int64   `db:"strikes"`
	Outs             *int64   `db:"outs"`
	CallCode         *string  `db:"call_code"`
	CallDescription  *string  `db:"call_description"`
	IsInPlay         *int64   `db:"isInPlay"`
	IsStrike         *int64   `db:"isStrike"`
	IsBall           *int64   `db:"isBall"`
	TypeCode         *string  `db:"type_code"`
	TypeDescription  *string  `db:"type_description"`
	TypeConfidence   *float64 `db:"typeConfidence"`
	StartSpeed       *float64 `db:"startSpeed"`
	EndSpeed         *float64 `db:"endSpeed"`
	Zone             *int64   `db:"zone"`
	StrikeZoneTop    *float64 `db:"strikeZoneTop"`
	StrikeZoneBottom *float64 `db:"strikeZoneBottom"`
	PlateX           *float64 `db:"plateX"`
	PlateZ           *float64 `db:"plateZ"`
	CoordinatesX     *float64 `db:"coordinates_x"`
	CoordinatesY     *float64 `db:"coordinates_y"`
	X0               *float64 `db:"x0"`
	Y0               *float64 `db:"y0"`
	Z0               *float64 `db:"z0"`
	VX0              *float64 `db:"vX0"`
	VY0              *float64 `db:"vY0"`
	VZ0              *float64 `db:"vZ0"`
	AX               *float64 `db:"aX"`
	AY               *float64 `db:"aY"`
	AZ               *float64 `db:"aZ"`
	PfxX             *float64 `db:"pfxX"`
	PfxZ             *float64 `db:"pfxZ"`
	BreakAngle       *float64 `db:"breakAngle"`
	BreakLength      *float64 `db:"breakLength"`
	BreakY           *float64 `db:"breakY"`
	SpinRate         *float64 `db:"spinRate"`
	SpinDirection    *float64 `db:"spinDirection"`
	PlateTime        *float64 `db:"plateTime"`
	Extension        *float64 `db:"extension"`
	StartTime        *string  `db:"startTime"`
	EndTime          *string  `db:"endTime"`
	PlayID           *string  `db:"playId"`
	FetchedAt        string   `db:"_fetched_at"`
	provenance.Stamp
}

// BattedBall references the pitch that was put in play via (GamePK, AtBatIndex, PitchNumber).
type BattedBall struct {
	GamePK         int64    `db:"gamePk"`
	AtBatIndex     *int64   `db:"atBatIndex"`
	PitchNumber    *int64   `db:"pitchNumber"`
	BatterID       *int64   `db:"batter_id"`
	PitcherID      *int64   `db:"pitcher_id"`
	Inning         *int64   `db:"inning"`
	HalfInning     *string  `db:"halfInning"`
	LaunchSpeed    *float64 `db:"launchSpeed"`
	LaunchAngle    *float64 `db:"launchAngle"`
	TotalDistance  *float64 `db:"totalDistance"`
	Trajectory     *string  `db:"trajectory"`
	Hardness       *string  `db:"hardness"`
	Location       *string  `db:"location"`
	CoordinatesX   *float64 `db:"coordinates_x"`
	CoordinatesY   *float64 `db:"coordinates_y"`
	Event          *string  `db:"event"`
	EventType      *string  `db:"eventType"`
	Description    *string  `db:"description"`
	RBI            *int64   `db:"rbi"`
	AwayScore      *int64   `db:"awayScore"`
	HomeScore      *int64   `db:"homeScore"`
	HitProbability *float64 `db:"hitProbability"`
	IsBarrel       *int64   `db:"isBarrel"`
	BatSpeed       *float64 `db:"batSpeed"`
	IsSwordSwing   *int64   `db:"isSwordSwing"`
	PlayID         *string  `db:"playId"`
	FetchedAt      string   `db:"_fetched_at"`
	provenance.Stamp
}

// GamePlays is everything extracted from one game's play list.
type GamePlays struct {
	AtBats      []AtBat
	Pitches     []Pitch
	BattedBalls []BattedBall
}

// PlayerIDs returns the distinct batter and pitcher ids, in first-seen order.
func (g GamePlays) PlayerIDs() []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	add := func(id *int64) {
		if id == nil || *id <= 0 {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	for _, ab := range g.AtBats {
		add(ab.BatterID)
		add(ab.PitcherID)
	}
	return out
}
