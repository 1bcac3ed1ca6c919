package controller

import (
	"context"
	"strings"
	"time"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/ledger"
	"github.com/jazelams/soccer-app/model"
)

func (c *controller) ListTournaments(ctx context.Context, p *auth.Principal) ([]model.Tournament, error) {
	if !auth.Allow(p.Role, auth.ActionListTournaments, false) {
		return nil, ErrForbidden
	}
	return c.db.ListTournaments(ctx)
}

func (c *controller) CreateTournament(ctx context.Context, p *auth.Principal, name string, day model.DayOfWeek, startDate time.Time) (*model.Tournament, error) {
	if !auth.Allow(p.Role, auth.ActionManageTournament, false) {
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("tournament name must be provided")
	}
	if _, err := model.ParseDayOfWeek(string(day)); err != nil {
		return nil, validationErrorf("invalid day of week: %s", day)
	}

	if startDate.IsZero() {
		startDate = c.clock.Now().UTC().Truncate(24 * time.Hour)
	}

	t := &model.Tournament{
		Name:      name,
		Day:       day,
		Status:    model.TournamentActive,
		StartDate: startDate,
	}
	if err := c.db.CreateTournament(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *controller) UpdateTournament(ctx context.Context, p *auth.Principal, id int32, upd db.TournamentUpdate) (*model.Tournament, error) {
	if !auth.Allow(p.Role, auth.ActionManageTournament, false) {
		return nil, ErrForbidden
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, validationErrorf("tournament name must not be empty")
	}
	if upd.Status != nil {
		if _, err := model.ParseTournamentStatus(string(*upd.Status)); err != nil {
			return nil, validationErrorf("invalid tournament status: %s", *upd.Status)
		}
	}

	return c.db.UpdateTournament(ctx, id, upd)
}

func (c *controller) GetTournamentRoster(ctx context.Context, p *auth.Principal, id int32) (*ledger.Roster, error) {
	// The roster exposes every team's financial summary, so it needs
	// the same permission as reading any team's statement.
	if !auth.Allow(p.Role, auth.ActionReadAnyStatement, false) {
		return nil, ErrForbidden
	}

	t, err := c.db.GetTournamentWithTeams(ctx, id)
	if err != nil {
		return nil, err
	}
	return ledger.BuildRoster(t), nil
}
