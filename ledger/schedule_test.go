package ledger

import (
	"testing"
	"time"
)

func TestMatchdayDates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	want := []string{
		"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29",
		"2024-02-05", "2024-02-12", "2024-02-19", "2024-02-26", "2024-03-04",
	}

	dates := MatchdayDates(start)
	if len(dates) != 10 {
		t.Fatalf("expected 10 dates, got %d", len(dates))
	}
	for i, d := range dates {
		if got := d.Format(time.DateOnly); got != want[i] {
			t.Errorf("matchday %d expected %s, got %s", i+1, want[i], got)
		}
	}
}

// A date-only value viewed through a western timezone still lands on
// 2023-12-31 locally. The scheduler must key off the UTC calendar day so
// the fixture dates do not shift by one.
func TestMatchdayDatesTimezoneSafe(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	zones := []*time.Location{
		time.FixedZone("UTC-8", -8*3600),
		time.FixedZone("UTC-5", -5*3600),
		time.FixedZone("UTC+13", 13*3600),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			dates := MatchdayDates(utc.In(zone))
			if got := dates[0].Format(time.DateOnly); got != "2024-01-01" {
				t.Errorf("matchday 1 expected 2024-01-01, got %s", got)
			}
			if got := dates[9].Format(time.DateOnly); got != "2024-03-04" {
				t.Errorf("matchday 10 expected 2024-03-04, got %s", got)
			}
		})
	}
}

func TestMatchdayDatesNoStartDate(t *testing.T) {
	dates := MatchdayDates(time.Time{})
	if len(dates) != 10 {
		t.Fatalf("expected 10 placeholder dates, got %d", len(dates))
	}
	for i, d := range dates {
		if !d.IsZero() {
			t.Errorf("matchday %d expected a zero placeholder, got %v", i+1, d)
		}
	}
}
