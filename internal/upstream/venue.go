package upstream

type VenuesResponse struct {
	Venues []Venue `json:"venues" validate:"required,min=1,dive"`
}

type Venue struct {
	ID        int64         `json:"id" validate:"required,gt=0"`
	Name      *string       `json:"name"`
	Active    *bool         `json:"active"`
	Location  VenueLocation `json:"location"`
	TimeZone  VenueTimeZone `json:"timeZone"`
	FieldInfo FieldInfo     `json:"fieldInfo"`
}

type VenueLocation struct {
	Address1           *string     `json:"address1"`
	City               *string     `json:"city"`
	State              *string     `json:"state"`
	StateAbbrev        *string     `json:"stateAbbrev"`
	PostalCode         *string     `json:"postalCode"`
	Country            *string     `json:"country"`
	Phone              *string     `json:"phone"`
	DefaultCoordinates Coordinates `json:"defaultCoordinates"`
	AzimuthAngle       *float64    `json:"azimuthAngle"`
	Elevation          *int64      `json:"elevation"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type VenueTimeZone struct {
	ID     *string `json:"id"`
	Offset *int64  `json:"offset"`
	Tz     *string `json:"tz"`
}

type FieldInfo struct {
	Capacity    *int64  `json:"capacity"`
	TurfType    *string `json:"turfType"`
	RoofType    *string `json:"roofType"`
	LeftLine    *int64  `json:"leftLine"`
	LeftCenter  *int64  `json:"leftCenter"`
	Center      *int64  `json:"center"`
	RightCenter *int64  `json:"rightCenter"`
	RightLine   *int64  `json:"rightLine"`
}
