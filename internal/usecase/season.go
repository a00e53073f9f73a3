package usecase

import (
	"fmt"
	"strings"
	"time"
)

// EarliestSeason is the first season with pitch tracking data.
const EarliestSeason = 2008

// SeasonDates spans spring training through the World Series, Feb 15 to Nov 15.
func SeasonDates(year int) (start, end time.Time, err error) {
	if year < EarliestSeason {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: data is only available from %d onwards", ErrInvalidInput, EarliestSeason)
	}
	start = time.Date(year, time.February, 15, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.November, 15, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(v string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrInvalidInput, v)
	}
	return d, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidInput, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return nil
}
