package db

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/model"
)

type DB interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error

	// ListTournaments returns all tournaments ordered by id, each with
	// its team count populated.
	ListTournaments(ctx context.Context) ([]model.Tournament, error)
	GetTournament(ctx context.Context, id int32) (*model.Tournament, error)
	// GetTournamentWithTeams loads the tournament plus its teams
	// (name-ascending) and every team's payments, for the roster view.
	GetTournamentWithTeams(ctx context.Context, id int32) (*model.Tournament, error)
	CreateTournament(ctx context.Context, t *model.Tournament) error
	UpdateTournament(ctx context.Context, id int32, upd TournamentUpdate) (*model.Tournament, error)

	// GetTeamWithPayments loads the team plus its tournament and its
	// payments ordered most recent first, for the statement view.
	GetTeamWithPayments(ctx context.Context, id int32) (*model.Team, error)
	CreateTeam(ctx context.Context, t *model.Team) error
	UpdateTeam(ctx context.Context, id int32, upd TeamUpdate) (*model.Team, error)
	UpdateMatchdayStatuses(ctx context.Context, teamID int32, statuses model.MatchdayStatuses) error
	// DeleteTeamCascade removes the team and all of its payments in one
	// transaction, payments first.
	DeleteTeamCascade(ctx context.Context, id int32) error

	CreatePayment(ctx context.Context, p *model.Payment) error

	// EnsureSeedData idempotently creates the six weekday tournaments
	// and the initial admin user.
	EnsureSeedData(ctx context.Context, adminPasswordHash string) error

	Close()
}

// TeamUpdate is a partial update; nil fields are left unchanged.
type TeamUpdate struct {
	Name            *string
	RegistrationFee *decimal.Decimal
	ArbitrationFee  *decimal.Decimal
	DiscountAmount  *decimal.Decimal
}

// TournamentUpdate is a partial update; nil fields are left unchanged.
type TournamentUpdate struct {
	Name      *string
	StartDate *time.Time
	Status    *model.TournamentStatus
}
