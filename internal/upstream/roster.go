package upstream

type Roster struct {
	TeamID *int64        `json:"teamId"`
	Roster []RosterEntry `json:"roster"`
}

type RosterEntry struct {
	Person       PersonRef       `json:"person"`
	JerseyNumber *Text           `json:"jerseyNumber"`
	Position     Position        `json:"position"`
	Status       CodeDescription `json:"status"`
}
