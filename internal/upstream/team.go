package upstream

type TeamsResponse struct {
	Teams []Team `json:"teams" validate:"required,min=1,dive"`
}

type Team struct {
	ID              int64    `json:"id" validate:"required,gt=0"`
	Name            *string  `json:"name"`
	TeamCode        *string  `json:"teamCode"`
	FileCode        *string  `json:"fileCode"`
	Abbreviation    *string  `json:"abbreviation"`
	TeamName        *string  `json:"teamName"`
	LocationName    *string  `json:"locationName"`
	FirstYearOfPlay *Text    `json:"firstYearOfPlay"`
	League          NamedRef `json:"league"`
	Division        NamedRef `json:"division"`
	Venue           NamedRef `json:"venue"`
	Active          *bool    `json:"active"`
}
