package mockcontroller

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/controller"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/ledger"
	"github.com/jazelams/soccer-app/model"
)

type C struct {
	mock.Mock
}

func (c *C) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	args := c.Called(ctx, username, password)

	var u *model.User
	if args.Get(1) != nil {
		u = args.Get(1).(*model.User)
	}
	return args.String(0), u, args.Error(2)
}

func (c *C) CreateUser(ctx context.Context, p *auth.Principal, username, password string, role model.Role, teamID *int32) (*model.User, error) {
	args := c.Called(ctx, p, username, password, role, teamID)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (c *C) ListTournaments(ctx context.Context, p *auth.Principal) ([]model.Tournament, error) {
	args := c.Called(ctx, p)

	var r []model.Tournament
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Tournament)
	}
	return r, args.Error(1)
}

func (c *C) CreateTournament(ctx context.Context, p *auth.Principal, name string, day model.DayOfWeek, startDate time.Time) (*model.Tournament, error) {
	args := c.Called(ctx, p, name, day, startDate)

	var t *model.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tournament)
	}
	return t, args.Error(1)
}

func (c *C) UpdateTournament(ctx context.Context, p *auth.Principal, id int32, upd db.TournamentUpdate) (*model.Tournament, error) {
	args := c.Called(ctx, p, id, upd)

	var t *model.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tournament)
	}
	return t, args.Error(1)
}

func (c *C) GetTournamentRoster(ctx context.Context, p *auth.Principal, id int32) (*ledger.Roster, error) {
	args := c.Called(ctx, p, id)

	var r *ledger.Roster
	if args.Get(0) != nil {
		r = args.Get(0).(*ledger.Roster)
	}
	return r, args.Error(1)
}

func (c *C) CreateTeam(ctx context.Context, p *auth.Principal, name string, tournamentID int32, registration, arbitration, discount decimal.Decimal) (*model.Team, error) {
	args := c.Called(ctx, p, name, tournamentID, registration, arbitration, discount)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) UpdateTeam(ctx context.Context, p *auth.Principal, id int32, upd db.TeamUpdate) (*model.Team, error) {
	args := c.Called(ctx, p, id, upd)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) DeleteTeam(ctx context.Context, p *auth.Principal, id int32) error {
	args := c.Called(ctx, p, id)
	return args.Error(0)
}

func (c *C) GetTeamStatement(ctx context.Context, p *auth.Principal, teamID int32) (*ledger.Statement, error) {
	args := c.Called(ctx, p, teamID)

	var s *ledger.Statement
	if args.Get(0) != nil {
		s = args.Get(0).(*ledger.Statement)
	}
	return s, args.Error(1)
}

func (c *C) UpdateMatchdayStatus(ctx context.Context, p *auth.Principal, teamID int32, matchday int, status string) (model.MatchdayStatuses, error) {
	args := c.Called(ctx, p, teamID, matchday, status)

	var m model.MatchdayStatuses
	if args.Get(0) != nil {
		m = args.Get(0).(model.MatchdayStatuses)
	}
	return m, args.Error(1)
}

func (c *C) RecordPayment(ctx context.Context, p *auth.Principal, input controller.PaymentInput) (*model.Payment, error) {
	args := c.Called(ctx, p, input)

	var pay *model.Payment
	if args.Get(0) != nil {
		pay = args.Get(0).(*model.Payment)
	}
	return pay, args.Error(1)
}
