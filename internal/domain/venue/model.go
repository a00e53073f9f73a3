package venue

import "github.com/riskibarqy/mlb-stats/internal/platform/provenance"

// Venue is keyed by (ID, Year): dimensions and capacity change between seasons.
type Venue struct {
	ID             int64    `db:"id"`
	Year           int64    `db:"year"`
	Name           *string  `db:"name"`
	Active         *int64   `db:"active"`
	Address1       *string  `db:"address1"`
	City           *string  `db:"city"`
	State          *string  `db:"state"`
	StateAbbrev    *string  `db:"stateAbbrev"`
	PostalCode     *string  `db:"postalCode"`
	Country        *string  `db:"country"`
	Phone          *string  `db:"phone"`
	Latitude       *float64 `db:"latitude"`
	Longitude      *float64 `db:"longitude"`
	AzimuthAngle   *float64 `db:"azimuthAngle"`
	Elevation      *int64   `db:"elevation"`
	TimeZoneID     *string  `db:"timeZone_id"`
	TimeZoneOffset *int64   `db:"timeZone_offset"`
	TimeZoneTz     *string  `db:"timeZone_tz"`
	Capacity       *int64   `db:"capacity"`
	TurfType       *string  `db:"turfType"`
	RoofType       *string  `db:"roofType"`
	LeftLine       *int64   `db:"leftLine"`
	LeftCenter     *int64   `db:"leftCenter"`
	Center         *int64   `db:"center"`
	RightCenter    *int64   `db:"rightCenter"`
	RightLine      *int64   `db:"rightLine"`
	FetchedAt      string   `db:"_fetched_at"`
	provenance.Stamp
}
