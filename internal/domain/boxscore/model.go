package boxscore

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// BattingLine is a player's batting line for one game. Rate stats are formatted
// strings computed from the game's counting stats.
type BattingLine struct {
	GamePK               int64   `db:"gamePk"`
	PlayerID             int64   `db:"player_id"`
	TeamID               *int64  `db:"team_id"`
	BattingOrder         *int64  `db:"battingOrder"`
	PositionCode         *string `db:"position_code"`
	PositionName         *string `db:"position_name"`
	PositionAbbreviation *string `db:"position_abbreviation"`
	GamesPlayed          *int64  `db:"gamesPlayed"`
	FlyOuts              *int64  `db:"flyOuts"`
	GroundOuts           *int64  `db:"groundOuts"`
	Runs                 *int64  `db:"runs"`
	Doubles              *int64  `db:"doubles"`
	Triples              *int64  `db:"triples"`
	HomeRuns             *int64  `db:"homeRuns"`
	StrikeOuts           *int64  `db:"strikeOuts"`
	BaseOnBalls          *int64  `db:"baseOnBalls"`
	IntentionalWalks     *int64  `db:"intentionalWalks"`
	Hits                 *int64  `db:"hits"`
	HitByPitch           *int64  `db:"hitByPitch"`
	AtBats               *int64  `db:"atBats"`
	CaughtStealing       *int64  `db:"caughtStealing"`
	StolenBases          *int64  `db:"stolenBases"`
	StolenBasePercentage *string `db:"stolenBasePercentage"`
	GroundIntoDoublePlay *int64  `db:"groundIntoDoublePlay"`
	GroundIntoTriplePlay *int64  `db:"groundIntoTriplePlay"`
	PlateAppearances     *int64  `db:"plateAppearances"`
	TotalBases           *int64  `db:"totalBases"`
	RBI                  *int64  `db:"rbi"`
	LeftOnBase           *int64  `db:"leftOnBase"`
	SacBunts             *int64  `db:"sacBunts"`
	SacFlies             *int64  `db:"sacFlies"`
	CatchersInterference *int64  `db:"catchersInterference"`
	Pickoffs             *int64  `db:"pickoffs"`
	Avg                  *string `db:"avg"`
	OBP                  *string `db:"obp"`
	SLG                  *string `db:"slg"`
	OPS                  *string `db:"ops"`
	AtBatsPerHomeRun     *string `db:"atBatsPerHomeRun"`
	FetchedAt            string  `db:"_fetched_at"`
	provenance.Stamp
}

// PitchingLine is a pitcher's line for one game. InningsPitched keeps the upstream
// "X.Y" notation; InningsPitchedDecimal holds the parsed value (Y counts thirds).
type PitchingLine struct {
	GamePK                 int64    `db:"gamePk"`
	PlayerID               int64    `db:"player_id"`
	TeamID                 *int64   `db:"team_id"`
	IsStartingPitcher      int64    `db:"isStartingPitcher"`
	PitchingOrder          *int64   `db:"pitchingOrder"`
	GamesPlayed            *int64   `db:"gamesPlayed"`
	GamesStarted           *int64   `db:"gamesStarted"`
	FlyOuts                *int64   `db:"flyOuts"`
	GroundOuts             *int64   `db:"groundOuts"`
	AirOuts                *int64   `db:"airOuts"`
	Runs                   *int64   `db:"runs"`
	Doubles                *int64   `db:"doubles"`
	Triples                *int64   `db:"triples"`
	HomeRuns               *int64   `db:"homeRuns"`
	StrikeOuts             *int64   `db:"strikeOuts"`
	BaseOnBalls            *int64   `db:"baseOnBalls"`
	IntentionalWalks       *int64   `db:"intentionalWalks"`
	Hits                   *int64   `db:"hits"`
	HitByPitch             *int64   `db:"hitByPitch"`
	AtBats                 *int64   `db:"atBats"`
	CaughtStealing         *int64   `db:"caughtStealing"`
	StolenBases            *int64   `db:"stolenBases"`
	NumberOfPitches        *int64   `db:"numberOfPitches"`
	InningsPitched         *string  `db:"inningsPitched"`
	InningsPitchedDecimal  *float64 `db:"inningsPitched_decimal"`
	Wins                   *int64   `db:"wins"`
	Losses                 *int64   `db:"losses"`
	Saves                  *int64   `db:"saves"`
	SaveOpportunities      *int64   `db:"saveOpportunities"`
	Holds                  *int64   `db:"holds"`
	BlownSaves             *int64   `db:"blownSaves"`
	EarnedRuns             *int64   `db:"earnedRuns"`
	BattersFaced           *int64   `db:"battersFaced"`
	Outs                   *int64   `db:"outs"`
	GamesPitched           *int64   `db:"gamesPitched"`
	CompleteGames          *int64   `db:"completeGames"`
	Shutouts               *int64   `db:"shutouts"`
	PitchesThrown          *int64   `db:"pitchesThrown"`
	Balls                  *int64   `db:"balls"`
	Strikes                *int64   `db:"strikes"`
	StrikePercentage       *string  `db:"strikePercentage"`
	HitBatsmen             *int64   `db:"hitBatsmen"`
	Balks                  *int64   `db:"balks"`
	WildPitches            *int64   `db:"wildPitches"`
	Pickoffs               *int64   `db:"pickoffs"`
	RBI                    *int64   `db:"rbi"`
	GamesFinished          *int64   `db:"gamesFinished"`
	RunsScoredPer9         *string  `db:"runsScoredPer9"`
	HomeRunsPer9           *string  `db:"homeRunsPer9"`
	InheritedRunners       *int64   `db:"inheritedRunners"`
	InheritedRunnersScored *int64   `db:"inheritedRunnersScored"`
	CatchersInterference   *int64   `db:"catchersInterference"`
	SacBunts               *int64   `db:"sacBunts"`
	SacFlies               *int64   `db:"sacFlies"`
	PassedBall             *int64   `db:"passedBall"`
	ERA                    *string  `db:"era"`
	WHIP                   *string  `db:"whip"`
	Note                   *string  `db:"note"`
	FetchedAt              string   `db:"_fetched_at"`
	provenance.Stamp
}
