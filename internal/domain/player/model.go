package player

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// Player is one row of the players table. Nested upstream objects are flattened as
// parent_child columns.
type Player struct {
	ID                          int64   `db:"id"`
	FullName                    *string `db:"fullName"`
	FirstName                   *string `db:"firstName"`
	LastName                    *string `db:"lastName"`
	UseName                     *string `db:"useName"`
	MiddleName                  *string `db:"middleName"`
	BoxscoreName                *string `db:"boxscoreName"`
	NickName                    *string `db:"nickName"`
	PrimaryNumber               *string `db:"primaryNumber"`
	BirthDate                   *string `db:"birthDate"`
	BirthCity                   *string `db:"birthCity"`
	BirthStateProvince          *string `db:"birthStateProvince"`
	BirthCountry                *string `db:"birthCountry"`
	DeathDate                   *string `db:"deathDate"`
	DeathCity                   *string `db:"deathCity"`
	DeathStateProvince          *string `db:"deathStateProvince"`
	DeathCountry                *string `db:"deathCountry"`
	Height                      *string `db:"height"`
	Weight                      *int64  `db:"weight"`
	PrimaryPositionCode         *string `db:"primaryPosition_code"`
	PrimaryPositionName         *string `db:"primaryPosition_name"`
	PrimaryPositionType         *string `db:"primaryPosition_type"`
	PrimaryPositionAbbreviation *string `db:"primaryPosition_abbreviation"`
	BatSideCode                 *string `db:"batSide_code"`
	BatSideDescription          *string `db:"batSide_description"`
	PitchHandCode               *string `db:"pitchHand_code"`
	PitchHandDescription        *string `db:"pitchHand_description"`
	DraftYear                   *int64  `db:"draftYear"`
	MLBDebutDate                *string `db:"mlbDebutDate"`
	LastPlayedDate              *string `db:"lastPlayedDate"`
	Active                      int64   `db:"active"`
	CurrentTeamID               *int64  `db:"currentTeam_id"`
	FetchedAt                   string  `db:"_fetched_at"`
	provenance.Stamp
}
