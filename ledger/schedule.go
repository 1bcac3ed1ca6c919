package ledger

import (
	"time"

	"github.com/jazelams/soccer-app/model"
)

// MatchdayDates expands a tournament start date into the ten weekly
// fixture dates, matchday 1 first. Start dates are stored date-only but
// travel as instants, so the calendar day is taken from the UTC view and
// rebuilt as a midnight-UTC date before adding week offsets. Adding
// offsets to the raw instant shifts the day near midnight in western
// timezones.
//
// A zero start time yields ten zero times, one placeholder per matchday.
func MatchdayDates(start time.Time) []time.Time {
	dates := make([]time.Time, model.MatchdayCount)
	if start.IsZero() {
		return dates
	}

	y, m, d := start.UTC().Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, 7*i)
	}
	return dates
}
