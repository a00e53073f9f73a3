// Package transform maps decoded stats API documents to table rows. Functions here do no
// I/O; the fetch timestamp and any association the document does not carry (team, season)
// come from the caller.
package transform

import (
	"github.com/riskibarqy/mlb-stats/internal/domain/player"
	"github.com/riskibarqy/mlb-stats/internal/domain/team"
	"github.com/riskibarqy/mlb-stats/internal/domain/venue"
	"github.com/riskibarqy/mlb-stats/internal/upstream"
)

func Team(t upstream.Team, fetchedAt string) team.Team {
	return team.Team{
		ID:              t.ID,
		Name:            t.Name,
		TeamCode:        t.TeamCode,
		FileCode:        t.FileCode,
		Abbreviation:    t.Abbreviation,
		TeamName:        t.TeamName,
		LocationName:    t.LocationName,
		FirstYearOfPlay: t.FirstYearOfPlay.Ptr(),
		LeagueID:        t.League.ID,
		LeagueName:      t.League.Name,
		DivisionID:      t.Division.ID,
		DivisionName:    t.Division.Name,
		VenueID:         t.Venue.ID,
		Active:          truthy(t.Active),
		FetchedAt:       fetchedAt,
	}
}

// Venue builds the row for one (venue, year) pair.
func Venue(v upstream.Venue, year int, fetchedAt string) venue.Venue {
	loc := v.Location
	return venue.Venue{
		ID:             v.ID,
		Year:           int64(year),
		Name:           v.Name,
		Active:         BoolToInt(v.Active),
		Address1:       loc.Address1,
		City:           loc.City,
		State:          loc.State,
		StateAbbrev:    loc.StateAbbrev,
		PostalCode:     loc.PostalCode,
		Country:        loc.Country,
		Phone:          loc.Phone,
		Latitude:       loc.DefaultCoordinates.Latitude,
		Longitude:      loc.DefaultCoordinates.Longitude,
		AzimuthAngle:   loc.AzimuthAngle,
		Elevation:      loc.Elevation,
		TimeZoneID:     v.TimeZone.ID,
		TimeZoneOffset: v.TimeZone.Offset,
		TimeZoneTz:     v.TimeZone.Tz,
		Capacity:       v.FieldInfo.Capacity,
		TurfType:       v.FieldInfo.TurfType,
		RoofType:       v.FieldInfo.RoofType,
		LeftLine:       v.FieldInfo.LeftLine,
		LeftCenter:     v.FieldInfo.LeftCenter,
		Center:         v.FieldInfo.Center,
		RightCenter:    v.FieldInfo.RightCenter,
		RightLine:      v.FieldInfo.RightLine,
		FetchedAt:      fetchedAt,
	}
}

// Player builds a players row. teamID overrides currentTeam.id; game feed bios have no
// currentTeam, so the caller passes the team the player appeared for.
func Player(p upstream.Person, fetchedAt string, teamID *int64) player.Player {
	current := p.CurrentTeam.ID
	if teamID != nil && *teamID > 0 {
		current = teamID
	}
	return player.Player{
		ID:                          p.ID,
		FullName:                    p.FullName,
		FirstName:                   p.FirstName,
		LastName:                    p.LastName,
		UseName:                     p.UseName,
		MiddleName:                  p.MiddleName,
		BoxscoreName:                p.BoxscoreName,
		NickName:                    p.NickName,
		PrimaryNumber:               p.PrimaryNumber.Ptr(),
		BirthDate:                   p.BirthDate,
		BirthCity:                   p.BirthCity,
		BirthStateProvince:          p.BirthStateProvince,
		BirthCountry:                p.BirthCountry,
		DeathDate:                   p.DeathDate,
		DeathCity:                   p.DeathCity,
		DeathStateProvince:          p.DeathStateProvince,
		DeathCountry:                p.DeathCountry,
		Height:                      p.Height,
		Weight:                      p.Weight,
		PrimaryPositionCode:         p.PrimaryPosition.Code,
		PrimaryPositionName:         p.PrimaryPosition.Name,
		PrimaryPositionType:         p.PrimaryPosition.Type,
		PrimaryPositionAbbreviation: p.PrimaryPosition.Abbreviation,
		BatSideCode:                 p.BatSide.Code,
		BatSideDescription:          p.BatSide.Description,
		PitchHandCode:               p.PitchHand.Code,
		PitchHandDescription:        p.PitchHand.Description,
		DraftYear:                   p.DraftYear,
		MLBDebutDate:                p.MLBDebutDate,
		LastPlayedDate:              p.LastPlayedDate,
		Active:                      truthy(p.Active),
		CurrentTeamID:               current,
		FetchedAt:                   fetchedAt,
	}
}
