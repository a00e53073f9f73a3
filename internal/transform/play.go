package transform

import (
	"github.com/riskibarqy/mlb-stats/internal/domain/play"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// Plays extracts at-bats, pitches and batted balls. Plays whose result type is not
// "atBat" are skipped.
func Plays(plays []upstream.Play, gamePK int64, fetchedAt string) play.GamePlays {
	out := play.GamePlays{
		AtBats:      make([]play.AtBat, 0, len(plays)),
		Pitches:     make([]play.Pitch, 0),
		BattedBalls: make([]play.BattedBall, 0),
	}
	for _, p := range plays {
		if !p.IsAtBat() {
			continue
		}
		out.AtBats = append(out.AtBats, AtBat(p, gamePK, fetchedAt))
		for _, ev := range p.PlayEvents {
			if ev.Pitch() {
				out.Pitches = append(out.Pitches, Pitch(p, ev, gamePK, fetchedAt))
			}
		}
		if ev, ok := BattedBallEvent(p); ok {
			out.BattedBalls = append(out.BattedBalls, BattedBall(p, ev, gamePK, fetchedAt))
		}
	}
	return out
}

// BattedBallEvent returns the last pitch event that was put in play and carries hit
// data. Scanning from the end skips fouls earlier in the plate appearance.
func BattedBallEvent(p upstream.Play) (upstream.PlayEvent, bool) {
	for i := len(p.PlayEvents) - 1; i >= 0; i-- {
		ev := p.PlayEvents[i]
		if ev.Pitch() && ev.InPlay() && ev.HitData != nil {
			return ev, true
		}
	}
	return upstream.PlayEvent{}, false
}

func AtBat(p upstream.Play, gamePK int64, fetchedAt string) play.AtBat {
	var pitches int64
	for _, ev := range p.PlayEvents {
		if ev.Pitch() {
			pitches++
		}
	}
	return play.AtBat{
		GamePK:        gamePK,
		AtBatIndex:    p.About.AtBatIndex,
		Inning:        p.About.Inning,
		HalfInning:    p.About.HalfInning,
		BatterID:      p.Matchup.Batter.ID,
		PitcherID:     p.Matchup.Pitcher.ID,
		BatSideCode:   p.Matchup.BatSide.Code,
		PitchHandCode: p.Matchup.PitchHand.Code,
		Event:         p.Result.Event,
		EventType:     p.Result.EventType,
		Description:   p.Result.Description,
		RBI:           p.Result.RBI,
		AwayScore:     p.Result.AwayScore,
		HomeScore:     p.Result.HomeScore,
		IsComplete:    BoolToInt(p.About.IsComplete),
		HasReview:     BoolToInt(p.About.HasReview),
		HasOut:        BoolToInt(p.About.HasOut),
		IsScoringPlay: BoolToInt(p.About.IsScoringPlay),
		Balls:         p.Count.Balls,
		Strikes:       p.Count.Strikes,
		Outs:          p.Count.Outs,
		StartTime:     p.About.StartTime,
		EndTime:       p.About.EndTime,
		PitchCount:    pitches,
		FetchedAt:     fetchedAt,
	}
}

func Pitch(p upstream.Play, ev upstream.PlayEvent, gamePK int64, fetchedAt string) play.Pitch {
	var pd upstream.PitchData
	if ev.PitchData != nil {
		pd = *ev.PitchData
	}
	c := pd.Coordinates
	d := ev.Details
	return play.Pitch{
		GamePK:           gamePK,
		AtBatIndex:       p.About.AtBatIndex,
		PitchNumber:      ev.PitchNumber,
		Inning:           p.About.Inning,
		HalfInning:       p.About.HalfInning,
		BatterID:         p.Matchup.Batter.ID,
		PitcherID:        p.Matchup.Pitcher.ID,
		BatSideCode:      p.Matchup.BatSide.Code,
		PitchHandCode:    p.Matchup.PitchHand.Code,
		Balls:            ev.Count.Balls,
		Strikes:          ev.Count.Strikes,
		Outs:             ev.Count.Outs,
		CallCode:         d.Call.Code,
		CallDescription:  d.Call.Description,
		IsInPlay:         BoolToInt(d.IsInPlay),
		IsStrike:         BoolToInt(d.IsStrike),
		IsBall:           BoolToInt(d.IsBall),
		TypeCode:         d.Type.Code,
		TypeDescription:  d.Type.Description,
		TypeConfidence:   pd.TypeConfidence,
		StartSpeed:       pd.StartSpeed,
		EndSpeed:         pd.EndSpeed,
		Zone:             pd.Zone,
		StrikeZoneTop:    pd.StrikeZoneTop,
		StrikeZoneBottom: pd.StrikeZoneBottom,
		PlateX:           c.PX,
		PlateZ:           c.PZ,
		CoordinatesX:     c.X,
		CoordinatesY:     c.Y,
		X0:               c.X0,
		Y0:               c.Y0,
		Z0:               c.Z0,
		VX0:              c.VX0,
		VY0:              c.VY0,
		VZ0:              c.VZ0,
		AX:               c.AX,
		AY:               c.AY,
		AZ:               c.AZ,
		PfxX:             c.PfxX,
		PfxZ:             c.PfxZ,
		BreakAngle:       pd.Breaks.BreakAngle,
		BreakLength:      pd.Breaks.BreakLength,
		BreakY:           pd.Breaks.BreakY,
		SpinRate:         pd.Breaks.SpinRate,
		SpinDirection:    pd.Breaks.SpinDirection,
		PlateTime:        pd.PlateTime,
		Extension:        pd.Extension,
		StartTime:        ev.StartTime,
		EndTime:          ev.EndTime,
		PlayID:           ev.PlayID,
		FetchedAt:        fetchedAt,
	}
}

func BattedBall(p upstream.Play, ev upstream.PlayEvent, gamePK int64, fetchedAt string) play.BattedBall {
	var hd upstream.HitData
	if ev.HitData != nil {
		hd = *ev.HitData
	}
	return play.BattedBall{
		GamePK:         gamePK,
		AtBatIndex:     p.About.AtBatIndex,
		PitchNumber:    ev.PitchNumber,
		BatterID:       p.Matchup.Batter.ID,
		PitcherID:      p.Matchup.Pitcher.ID,
		Inning:         p.About.Inning,
		HalfInning:     p.About.HalfInning,
		LaunchSpeed:    hd.LaunchSpeed,
		LaunchAngle:    hd.LaunchAngle,
		TotalDistance:  hd.TotalDistance,
		Trajectory:     hd.Trajectory,
		Hardness:       hd.Hardness,
		Location:       hd.Location.Ptr(),
		CoordinatesX:   hd.Coordinates.CoordX,
		CoordinatesY:   hd.Coordinates.CoordY,
		Event:          p.Result.Event,
		EventType:      p.Result.EventType,
		Description:    p.Result.Description,
		RBI:            p.Result.RBI,
		AwayScore:      p.Result.AwayScore,
		HomeScore:      p.Result.HomeScore,
		HitProbability: hd.HitProbability,
		IsBarrel:       BoolToInt(hd.IsBarrel),
		BatSpeed:       hd.BatSpeed,
		IsSwordSwing:   BoolToInt(hd.IsSwordSwing),
		PlayID:         ev.PlayID,
		FetchedAt:      fetchedAt,
	}
}
