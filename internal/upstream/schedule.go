package upstream

type Schedule struct {
	TotalGames *int64         `json:"totalGames"`
	Dates      []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

type ScheduleGame struct {
	GamePk       int64      `json:"gamePk"`
	GameType     *string    `json:"gameType"`
	Season       *Text      `json:"season"`
	GameDate     *string    `json:"gameDate"`
	OfficialDate *string    `json:"officialDate"`
	Status       GameStatus `json:"status"`
}

// GamePks lists game ids in schedule order, skipping duplicates (a suspended game can be
// listed on two dates).
func (s Schedule) GamePks() []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, d := range s.Dates {
		for _, g := range d.Games {
			if g.GamePk <= 0 {
				continue
			}
			if _, ok := seen[g.GamePk]; ok {
				continue
			}
			seen[g.GamePk] = struct{}{}
			out = append(out, g.GamePk)
		}
	}
	return out
}
