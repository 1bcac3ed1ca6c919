package controller

import (
	"context"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/ledger"
	"github.com/jazelams/soccer-app/model"
)

// C encapsulates business logic without worrying about any web layers.
// Every method that touches the ledger takes the caller's principal and
// checks the access matrix before reading or writing anything.
type C interface {
	// Login verifies credentials and returns a session token with the
	// authenticated user. Failures are reported through ErrBadCredentials
	// with no detail about which part was wrong.
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	CreateUser(ctx context.Context, p *auth.Principal, username, password string, role model.Role, teamID *int32) (*model.User, error)

	ListTournaments(ctx context.Context, p *auth.Principal) ([]model.Tournament, error)
	CreateTournament(ctx context.Context, p *auth.Principal, name string, day model.DayOfWeek, startDate time.Time) (*model.Tournament, error)
	UpdateTournament(ctx context.Context, p *auth.Principal, id int32, upd db.TournamentUpdate) (*model.Tournament, error)
	// GetTournamentRoster returns the tournament-wide financial view:
	// one row per team plus reconciling column totals and the scheduled
	// matchday dates.
	GetTournamentRoster(ctx context.Context, p *auth.Principal, id int32) (*ledger.Roster, error)

	CreateTeam(ctx context.Context, p *auth.Principal, name string, tournamentID int32, registration, arbitration, discount decimal.Decimal) (*model.Team, error)
	UpdateTeam(ctx context.Context, p *auth.Principal, id int32, upd db.TeamUpdate) (*model.Team, error)
	DeleteTeam(ctx context.Context, p *auth.Principal, id int32) error
	// GetTeamStatement returns the composite statement view for one
	// team. Representatives may only read their own team's statement.
	GetTeamStatement(ctx context.Context, p *auth.Principal, teamID int32) (*ledger.Statement, error)
	UpdateMatchdayStatus(ctx context.Context, p *auth.Principal, teamID int32, matchday int, status string) (model.MatchdayStatuses, error)

	RecordPayment(ctx context.Context, p *auth.Principal, input PaymentInput) (*model.Payment, error)
}

// PaymentInput carries the fields for a new payment. Matchday nil means
// a general (advance) payment.
type PaymentInput struct {
	TeamID       int32
	Amount       decimal.Decimal
	Method       model.PaymentMethod
	TransferRef  string
	TransferDate time.Time
	Matchday     *int
	Notes        string
}

type controller struct {
	clock  clock.Clock
	tokens auth.TokenService
	db     db.DB
}

func New(clock clock.Clock, tokens auth.TokenService, db db.DB) (C, error) {
	c := &controller{
		clock:  clock,
		tokens: tokens,
		db:     db,
	}
	return c, nil
}
