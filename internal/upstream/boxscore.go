package upstream

import (
	"strconv"
	"strings"
)

type Boxscore struct {
	Teams     BoxscoreTeams `json:"teams"`
	Officials []Official    `json:"officials"`
	Info      []LabelValue  `json:"info"`
}

type BoxscoreTeams struct {
	Away BoxscoreTeam `json:"away"`
	Home BoxscoreTeam `json:"home"`
}

// Sides yields away then home, the order stat lines are written in.
func (t BoxscoreTeams) Sides() []BoxscoreTeam {
	return []BoxscoreTeam{t.Away, t.Home}
}

type BoxscoreTeam struct {
	Team     NamedRef                  `json:"team"`
	Players  map[string]BoxscorePlayer `json:"players"`
	Pitchers []int64                   `json:"pitchers"`
	Batters  []int64                   `json:"batters"`
}

type BoxscorePlayer struct {
	Person       PersonRef          `json:"person"`
	JerseyNumber *Text              `json:"jerseyNumber"`
	Position     Position           `json:"position"`
	BattingOrder *Text              `json:"battingOrder"`
	Stats        PlayerGameStats    `json:"stats"`
	GameStatus   BoxscoreGameStatus `json:"gameStatus"`
}

type BoxscoreGameStatus struct {
	IsCurrentBatter   *bool `json:"isCurrentBatter"`
	IsCurrentPitcher  *bool `json:"isCurrentPitcher"`
	IsOnBench         *bool `json:"isOnBench"`
	IsSubstitute      *bool `json:"isSubstitute"`
	IsStartingPitcher *bool `json:"isStartingPitcher"`
}

type PlayerGameStats struct {
	Batting  *BattingStats  `json:"batting"`
	Pitching *PitchingStats `json:"pitching"`
}

type Official struct {
	Official     PersonRef `json:"official"`
	OfficialType *string   `json:"officialType"`
}

type LabelValue struct {
	Label *string `json:"label"`
	Value *string `json:"value"`
}

type BattingStats struct {
	GamesPlayed          *int64 `json:"gamesPlayed"`
	FlyOuts              *int64 `json:"flyOuts"`
	GroundOuts           *int64 `json:"groundOuts"`
	Runs                 *int64 `json:"runs"`
	Doubles              *int64 `json:"doubles"`
	Triples              *int64 `json:"triples"`
	HomeRuns             *int64 `json:"homeRuns"`
	StrikeOuts           *int64 `json:"strikeOuts"`
	BaseOnBalls          *int64 `json:"baseOnBalls"`
	IntentionalWalks     *int64 `json:"intentionalWalks"`
	Hits                 *int64 `json:"hits"`
	HitByPitch           *int64 `json:"hitByPitch"`
	AtBats               *int64 `json:"atBats"`
	CaughtStealing       *int64 `json:"caughtStealing"`
	StolenBases          *int64 `json:"stolenBases"`
	StolenBasePercentage *Text  `json:"stolenBasePercentage"`
	GroundIntoDoublePlay *int64 `json:"groundIntoDoublePlay"`
	GroundIntoTriplePlay *int64 `json:"groundIntoTriplePlay"`
	PlateAppearances     *int64 `json:"plateAppearances"`
	TotalBases           *int64 `json:"totalBases"`
	RBI                  *int64 `json:"rbi"`
	LeftOnBase           *int64 `json:"leftOnBase"`
	SacBunts             *int64 `json:"sacBunts"`
	SacFlies             *int64 `json:"sacFlies"`
	CatchersInterference *int64 `json:"catchersInterference"`
	Pickoffs             *int64 `json:"pickoffs"`
}

// Empty reports a missing or {} batting object (player did not bat).
func (s *BattingStats) Empty() bool { return allNil(s) }

type PitchingStats struct {
	GamesPlayed            *int64  `json:"gamesPlayed"`
	GamesStarted           *int64  `json:"gamesStarted"`
	FlyOuts                *int64  `json:"flyOuts"`
	GroundOuts             *int64  `json:"groundOuts"`
	AirOuts                *int64  `json:"airOuts"`
	Runs                   *int64  `json:"runs"`
	Doubles                *int64  `json:"doubles"`
	Triples                *int64  `json:"triples"`
	HomeRuns               *int64  `json:"homeRuns"`
	StrikeOuts             *int64  `json:"strikeOuts"`
	BaseOnBalls            *int64  `json:"baseOnBalls"`
	IntentionalWalks       *int64  `json:"intentionalWalks"`
	Hits                   *int64  `json:"hits"`
	HitByPitch             *int64  `json:"hitByPitch"`
	AtBats                 *int64  `json:"atBats"`
	CaughtStealing         *int64  `json:"caughtStealing"`
	StolenBases            *int64  `json:"stolenBases"`
	NumberOfPitches        *int64  `json:"numberOfPitches"`
	InningsPitched         *Text   `json:"inningsPitched"`
	Wins                   *int64  `json:"wins"`
	Losses                 *int64  `json:"losses"`
	Saves                  *int64  `json:"saves"`
	SaveOpportunities      *int64  `json:"saveOpportunities"`
	Holds                  *int64  `json:"holds"`
	BlownSaves             *int64  `json:"blownSaves"`
	EarnedRuns             *int64  `json:"earnedRuns"`
	BattersFaced           *int64  `json:"battersFaced"`
	Outs                   *int64  `json:"outs"`
	GamesPitched           *int64  `json:"gamesPitched"`
	CompleteGames          *int64  `json:"completeGames"`
	Shutouts               *int64  `json:"shutouts"`
	PitchesThrown          *int64  `json:"pitchesThrown"`
	Balls                  *int64  `json:"balls"`
	Strikes                *int64  `json:"strikes"`
	StrikePercentage       *Text   `json:"strikePercentage"`
	HitBatsmen             *int64  `json:"hitBatsmen"`
	Balks                  *int64  `json:"balks"`
	WildPitches            *int64  `json:"wildPitches"`
	Pickoffs               *int64  `json:"pickoffs"`
	RBI                    *int64  `json:"rbi"`
	GamesFinished          *int64  `json:"gamesFinished"`
	RunsScoredPer9         *Text   `json:"runsScoredPer9"`
	HomeRunsPer9           *Text   `json:"homeRunsPer9"`
	InheritedRunners       *int64  `json:"inheritedRunners"`
	InheritedRunnersScored *int64  `json:"inheritedRunnersScored"`
	CatchersInterference   *int64  `json:"catchersInterference"`
	SacBunts               *int64  `json:"sacBunts"`
	SacFlies               *int64  `json:"sacFlies"`
	PassedBall             *int64  `json:"passedBall"`
	Note                   *string `json:"note"`
}

func (s *PitchingStats) Empty() bool { return allNil(s) }

// PlayerIDFromKey parses boxscore player map keys of the form "ID<number>".
func PlayerIDFromKey(key string) (int64, bool) {
	if !strings.HasPrefix(key, "ID") {
		return 0, false
	}
	id, err := strconv.ParseInt(key[2:], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// HasPlayers reports whether either side lists any players; false means the game has not
// started or produced no boxscore.
func (b Boxscore) HasPlayers() bool {
	return len(b.Teams.Away.Players) > 0 || len(b.Teams.Home.Players) > 0
}
