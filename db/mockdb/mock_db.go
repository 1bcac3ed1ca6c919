package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/model"
)

type DB struct {
	mock.Mock
}

func (m *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (m *DB) CreateUser(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *DB) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	args := m.Called(ctx)

	var r []model.Tournament
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Tournament)
	}
	return r, args.Error(1)
}

func (m *DB) GetTournament(ctx context.Context, id int32) (*model.Tournament, error) {
	args := m.Called(ctx, id)

	var t *model.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tournament)
	}
	return t, args.Error(1)
}

func (m *DB) GetTournamentWithTeams(ctx context.Context, id int32) (*model.Tournament, error) {
	args := m.Called(ctx, id)

	var t *model.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tournament)
	}
	return t, args.Error(1)
}

func (m *DB) CreateTournament(ctx context.Context, t *model.Tournament) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *DB) UpdateTournament(ctx context.Context, id int32, upd db.TournamentUpdate) (*model.Tournament, error) {
	args := m.Called(ctx, id, upd)

	var t *model.Tournament
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Tournament)
	}
	return t, args.Error(1)
}

func (m *DB) GetTeamWithPayments(ctx context.Context, id int32) (*model.Team, error) {
	args := m.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (m *DB) CreateTeam(ctx context.Context, t *model.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *DB) UpdateTeam(ctx context.Context, id int32, upd db.TeamUpdate) (*model.Team, error) {
	args := m.Called(ctx, id, upd)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (m *DB) UpdateMatchdayStatuses(ctx context.Context, teamID int32, statuses model.MatchdayStatuses) error {
	args := m.Called(ctx, teamID, statuses)
	return args.Error(0)
}

func (m *DB) DeleteTeamCascade(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *DB) CreatePayment(ctx context.Context, p *model.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *DB) EnsureSeedData(ctx context.Context, adminPasswordHash string) error {
	args := m.Called(ctx, adminPasswordHash)
	return args.Error(0)
}

func (m *DB) Close() {
	m.Called()
}
