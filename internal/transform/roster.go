package transform

import (
	"github.com/riskibarqy/mlb-stats/internal/domain/roster"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

// RosterEntries builds game_rosters rows for one team; entries without a person id are
// dropped.
func RosterEntries(r upstream.Roster, gamePK, teamID int64, fetchedAt string) []roster.Entry {
	out := make([]roster.Entry, 0, len(r.Roster))
	seen := make(map[int64]struct{}, len(r.Roster))
	for _, e := range r.Roster {
		if e.Person.ID == nil || *e.Person.ID <= 0 {
			continue
		}
		if _, dup := seen[*e.Person.ID]; dup {
			continue
		}
		seen[*e.Person.ID] = struct{}{}
		out = append(out, roster.Entry{
			GamePK:               gamePK,
			TeamID:               teamID,
			PlayerID:             *e.Person.ID,
			JerseyNumber:         e.JerseyNumber.Ptr(),
			PositionCode:         e.Position.Code,
			PositionName:         e.Position.Name,
			PositionType:         e.Position.Type,
			PositionAbbreviation: e.Position.Abbreviation,
			StatusCode:           e.Status.Code,
			StatusDescription:    e.Status.Description,
			FetchedAt:            fetchedAt,
		})
	}
	return out
}

// RosterPlayerIDs returns the distinct player ids on the roster, ascending.
func RosterPlayerIDs(r upstream.Roster) []int64 {
	seen := make(map[int64]struct{}, len(r.Roster))
	for _, e := range r.Roster {
		if e.Person.ID != nil && *e.Person.ID > 0 {
			seen[*e.Person.ID] = struct{}{}
		}
	}
	return sortedIDs(seen)
}
