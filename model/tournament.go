package model

import (
	"fmt"
	"time"
)

// MatchdayCount is fixed for every tournament: ten weekly fixtures.
const MatchdayCount = 10

type DayOfWeek string

const (
	DayMonday    DayOfWeek = "MONDAY"
	DayTuesday   DayOfWeek = "TUESDAY"
	DayWednesday DayOfWeek = "WEDNESDAY"
	DayThursday  DayOfWeek = "THURSDAY"
	DayFriday    DayOfWeek = "FRIDAY"
	DaySaturday  DayOfWeek = "SATURDAY"
	DaySunday    DayOfWeek = "SUNDAY"
)

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	switch DayOfWeek(s) {
	case DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday:
		return DayOfWeek(s), nil
	}
	return "", fmt.Errorf("unknown day of week: %s", s)
}

type TournamentStatus string

const (
	TournamentActive   TournamentStatus = "ACTIVE"
	TournamentFinished TournamentStatus = "FINISHED"
)

func ParseTournamentStatus(s string) (TournamentStatus, error) {
	switch TournamentStatus(s) {
	case TournamentActive, TournamentFinished:
		return TournamentStatus(s), nil
	}
	return "", fmt.Errorf("unknown tournament status: %s", s)
}

type Tournament struct {
	ID     int32
	Name   string
	Day    DayOfWeek
	Status TournamentStatus
	// StartDate is a calendar date with no meaningful time component.
	// Zero means the start date has not been set yet.
	StartDate time.Time

	// TeamCount is populated when listing tournaments.
	TeamCount int
	// Teams is populated when loading a tournament roster.
	Teams []Team
}
