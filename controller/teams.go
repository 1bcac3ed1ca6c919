package controller

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/ledger"
	"github.com/jazelams/soccer-app/model"
)

func (c *controller) CreateTeam(ctx context.Context, p *auth.Principal, name string, tournamentID int32, registration, arbitration, discount decimal.Decimal) (*model.Team, error) {
	if !auth.Allow(p.Role, auth.ActionManageTeam, false) {
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("team name must be provided")
	}
	if err := validateFees(registration, arbitration, discount); err != nil {
		return nil, err
	}

	// Make sure the tournament exists so the insert fails cleanly.
	if _, err := c.db.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	t := &model.Team{
		Name:             name,
		TournamentID:     tournamentID,
		RegistrationFee:  registration,
		ArbitrationFee:   arbitration,
		DiscountAmount:   discount,
		MatchdayStatuses: model.MatchdayStatuses{},
		Active:           true,
	}
	if err := c.db.CreateTeam(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *controller) UpdateTeam(ctx context.Context, p *auth.Principal, id int32, upd db.TeamUpdate) (*model.Team, error) {
	if !auth.Allow(p.Role, auth.ActionManageTeam, false) {
		return nil, ErrForbidden
	}

	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, validationErrorf("team name must not be empty")
	}

	// Partial updates still have to respect the fee invariants, so the
	// unchanged fields are read back before checking.
	current, err := c.db.GetTeamWithPayments(ctx, id)
	if err != nil {
		return nil, err
	}

	registration := current.RegistrationFee
	if upd.RegistrationFee != nil {
		registration = *upd.RegistrationFee
	}
	arbitration := current.ArbitrationFee
	if upd.ArbitrationFee != nil {
		arbitration = *upd.ArbitrationFee
	}
	discount := current.DiscountAmount
	if upd.DiscountAmount != nil {
		discount = *upd.DiscountAmount
	}
	if err := validateFees(registration, arbitration, discount); err != nil {
		return nil, err
	}

	return c.db.UpdateTeam(ctx, id, upd)
}

func (c *controller) DeleteTeam(ctx context.Context, p *auth.Principal, id int32) error {
	if !auth.Allow(p.Role, auth.ActionManageTeam, false) {
		return ErrForbidden
	}
	return c.db.DeleteTeamCascade(ctx, id)
}

func (c *controller) GetTeamStatement(ctx context.Context, p *auth.Principal, teamID int32) (*ledger.Statement, error) {
	action := auth.ActionReadAnyStatement
	if p.Role == model.RoleTeamRep {
		action = auth.ActionReadOwnStatement
	}
	if !auth.Allow(p.Role, action, p.OwnsTeam(teamID)) {
		return nil, ErrForbidden
	}

	team, err := c.db.GetTeamWithPayments(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return ledger.BuildStatement(team), nil
}

// UpdateMatchdayStatus merges one matchday label into the stored
// mapping. This is a read-modify-write with no guard; two concurrent
// calls for the same team can drop one of the writes.
func (c *controller) UpdateMatchdayStatus(ctx context.Context, p *auth.Principal, teamID int32, matchday int, status string) (model.MatchdayStatuses, error) {
	if !auth.Allow(p.Role, auth.ActionUpdateMatchdayStatus, false) {
		return nil, ErrForbidden
	}

	if matchday < 1 || matchday > model.MatchdayCount {
		return nil, validationErrorf("matchday must be between 1 and %d, got %d", model.MatchdayCount, matchday)
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, validationErrorf("matchday status must be provided")
	}

	team, err := c.db.GetTeamWithPayments(ctx, teamID)
	if err != nil {
		return nil, err
	}

	statuses := team.MatchdayStatuses
	if statuses == nil {
		statuses = model.MatchdayStatuses{}
	}
	statuses[matchday] = status

	if err := c.db.UpdateMatchdayStatuses(ctx, teamID, statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func validateFees(registration, arbitration, discount decimal.Decimal) error {
	if registration.IsNegative() {
		return validationErrorf("registration fee must not be negative")
	}
	if arbitration.IsNegative() {
		return validationErrorf("arbitration fee must not be negative")
	}
	if discount.IsNegative() {
		return validationErrorf("discount must not be negative")
	}
	if discount.GreaterThan(registration.Add(arbitration)) {
		return validationErrorf("discount must not exceed the base amount")
	}
	return nil
}
