package transform

import (
	"sort"

	"github.com/riskibarqy/mlb-stats/internal/domain/boxscore"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

type sidePlayer struct {
	teamID   *int64
	team     upstream.BoxscoreTeam
	playerID int64
	data     upstream.BoxscorePlayer
}

// eachPlayer walks away then home players in key order so output is stable.
func eachPlayer(box upstream.Boxscore, fn func(sidePlayer)) {
	for _, side := range box.Teams.Sides() {
		keys := make([]string, 0, len(side.Players))
		for k := range side.Players {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := side.Players[k]
			if p.Person.ID == nil || *p.Person.ID <= 0 {
				continue
			}
			fn(sidePlayer{teamID: side.Team.ID, team: side, playerID: *p.Person.ID, data: p})
		}
	}
}

// BoxscorePlayerIDs returns every distinct player id in the boxscore, ascending.
func BoxscorePlayerIDs(box upstream.Boxscore) []int64 {
	seen := make(map[int64]struct{})
	eachPlayer(box, func(sp sidePlayer) { seen[sp.playerID] = struct{}{} })
	return sortedIDs(seen)
}

// PlayerTeams maps player id to team id using the "ID<n>" keys of each side.
func PlayerTeams(box upstream.Boxscore) map[int64]int64 {
	out := make(map[int64]int64)
	for _, side := range box.Teams.Sides() {
		if side.Team.ID == nil {
			continue
		}
		for key := range side.Players {
			if id, ok := upstream.PlayerIDFromKey(key); ok {
				out[id] = *side.Team.ID
			}
		}
	}
	return out
}

// BattingLines returns one row per player with a non-empty batting object.
func BattingLines(box upstream.Boxscore, gamePK int64, fetchedAt string) []boxscore.BattingLine {
	out := make([]boxscore.BattingLine, 0)
	eachPlayer(box, func(sp sidePlayer) {
		b := sp.data.Stats.Batting
		if b.Empty() {
			return
		}
		obp := OnBasePercentage(b.Hits, b.BaseOnBalls, b.HitByPitch, b.AtBats, b.SacFlies)
		slg := Slugging(b.TotalBases, b.AtBats)
		pos := sp.data.Position

		out = append(out, boxscore.BattingLine{
			GamePK:               gamePK,
			PlayerID:             sp.playerID,
			TeamID:               sp.teamID,
			BattingOrder:         sp.data.BattingOrder.Int(),
			PositionCode:         pos.Code,
			PositionName:         pos.Name,
			PositionAbbreviation: pos.Abbreviation,
			GamesPlayed:          b.GamesPlayed,
			FlyOuts:              b.FlyOuts,
			GroundOuts:           b.GroundOuts,
			Runs:                 b.Runs,
			Doubles:              b.Doubles,
			Triples:              b.Triples,
			HomeRuns:             b.HomeRuns,
			StrikeOuts:           b.StrikeOuts,
			BaseOnBalls:          b.BaseOnBalls,
			IntentionalWalks:     b.IntentionalWalks,
			Hits:                 b.Hits,
			HitByPitch:           b.HitByPitch,
			AtBats:               b.AtBats,
			CaughtStealing:       b.CaughtStealing,
			StolenBases:          b.StolenBases,
			StolenBasePercentage: b.StolenBasePercentage.Ptr(),
			GroundIntoDoublePlay: b.GroundIntoDoublePlay,
			GroundIntoTriplePlay: b.GroundIntoTriplePlay,
			PlateAppearances:     b.PlateAppearances,
			TotalBases:           b.TotalBases,
			RBI:                  b.RBI,
			LeftOnBase:           b.LeftOnBase,
			SacBunts:             b.SacBunts,
			SacFlies:             b.SacFlies,
			CatchersInterference: b.CatchersInterference,
			Pickoffs:             b.Pickoffs,
			Avg:                  BattingAverage(b.Hits, b.AtBats),
			OBP:                  obp,
			SLG:                  slg,
			OPS:                  OPS(obp, slg),
			AtBatsPerHomeRun:     AtBatsPerHomeRun(b.AtBats, b.HomeRuns),
			FetchedAt:            fetchedAt,
		})
	})
	return out
}

// PitchingLines returns one row per player with a non-empty pitching object.
// pitchingOrder is the 1-based position in the side's pitchers list.
func PitchingLines(box upstream.Boxscore, gamePK int64, fetchedAt string) []boxscore.PitchingLine {
	out := make([]boxscore.PitchingLine, 0)
	eachPlayer(box, func(sp sidePlayer) {
		p := sp.data.Stats.Pitching
		if p.Empty() {
			return
		}
		var order *int64
		for i, id := range sp.team.Pitchers {
			if id == sp.playerID {
				order = int64Ptr(int64(i + 1))
				break
			}
		}
		innings := ParseInningsPitched(p.InningsPitched.Ptr())

		out = append(out, boxscore.PitchingLine{
			GamePK:                 gamePK,
			PlayerID:               sp.playerID,
			TeamID:                 sp.teamID,
			IsStartingPitcher:      truthy(sp.data.GameStatus.IsStartingPitcher),
			PitchingOrder:          order,
			GamesPlayed:            p.GamesPlayed,
			GamesStarted:           p.GamesStarted,
			FlyOuts:                p.FlyOuts,
			GroundOuts:             p.GroundOuts,
			AirOuts:                p.AirOuts,
			Runs:                   p.Runs,
			Doubles:                p.Doubles,
			Triples:                p.Triples,
			HomeRuns:               p.HomeRuns,
			StrikeOuts:             p.StrikeOuts,
			BaseOnBalls:            p.BaseOnBalls,
			IntentionalWalks:       p.IntentionalWalks,
			Hits:                   p.Hits,
			HitByPitch:             p.HitByPitch,
			AtBats:                 p.AtBats,
			CaughtStealing:         p.CaughtStealing,
			StolenBases:            p.StolenBases,
			NumberOfPitches:        p.NumberOfPitches,
			InningsPitched:         p.InningsPitched.Ptr(),
			InningsPitchedDecimal:  innings,
			Wins:                   p.Wins,
			Losses:                 p.Losses,
			Saves:                  p.Saves,
			SaveOpportunities:      p.SaveOpportunities,
			Holds:                  p.Holds,
			BlownSaves:             p.BlownSaves,
			EarnedRuns:             p.EarnedRuns,
			BattersFaced:           p.BattersFaced,
			Outs:                   p.Outs,
			GamesPitched:           p.GamesPitched,
			CompleteGames:          p.CompleteGames,
			Shutouts:               p.Shutouts,
			PitchesThrown:          p.PitchesThrown,
			Balls:                  p.Balls,
			Strikes:                p.Strikes,
			StrikePercentage:       p.StrikePercentage.Ptr(),
			HitBatsmen:             p.HitBatsmen,
			Balks:                  p.Balks,
			WildPitches:            p.WildPitches,
			Pickoffs:               p.Pickoffs,
			RBI:                    p.RBI,
			GamesFinished:          p.GamesFinished,
			RunsScoredPer9:         p.RunsScoredPer9.Ptr(),
			HomeRunsPer9:           p.HomeRunsPer9.Ptr(),
			InheritedRunners:       p.InheritedRunners,
			InheritedRunnersScored: p.InheritedRunnersScored,
			CatchersInterference:   p.CatchersInterference,
			SacBunts:               p.SacBunts,
			SacFlies:               p.SacFlies,
			PassedBall:             p.PassedBall,
			ERA:                    ERA(p.EarnedRuns, innings),
			WHIP:                   WHIP(p.Hits, p.BaseOnBalls, innings),
			Note:                   p.Note,
			FetchedAt:              fetchedAt,
		})
	})
	return out
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
