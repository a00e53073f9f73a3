package upstream

type PeopleResponse struct {
	People []Person `json:"people" validate:"required,min=1,dive"`
}

type Person struct {
	ID                 int64           `json:"id" validate:"required,gt=0"`
	FullName           *string         `json:"fullName"`
	FirstName          *string         `json:"firstName"`
	LastName           *string         `json:"lastName"`
	UseName            *string         `json:"useName"`
	MiddleName         *string         `json:"middleName"`
	BoxscoreName       *string         `json:"boxscoreName"`
	NickName           *string         `json:"nickName"`
	PrimaryNumber      *Text           `json:"primaryNumber"`
	BirthDate          *string         `json:"birthDate"`
	BirthCity          *string         `json:"birthCity"`
	BirthStateProvince *string         `json:"birthStateProvince"`
	BirthCountry       *string         `json:"birthCountry"`
	DeathDate          *string         `json:"deathDate"`
	DeathCity          *string         `json:"deathCity"`
	DeathStateProvince *string         `json:"deathStateProvince"`
	DeathCountry       *string         `json:"deathCountry"`
	Height             *string         `json:"height"`
	Weight             *int64          `json:"weight"`
	PrimaryPosition    Position        `json:"primaryPosition"`
	BatSide            CodeDescription `json:"batSide"`
	PitchHand          CodeDescription `json:"pitchHand"`
	DraftYear          *int64          `json:"draftYear"`
	MLBDebutDate       *string         `json:"mlbDebutDate"`
	LastPlayedDate     *string         `json:"lastPlayedDate"`
	Active             *bool           `json:"active"`
	CurrentTeam        IDRef           `json:"currentTeam"`
}
