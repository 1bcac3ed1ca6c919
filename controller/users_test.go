package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/db/mockdb"
	"github.com/jazelams/soccer-app/model"
)

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}

	mdb := &mockdb.DB{}
	mdb.On("GetUserByUsername", mock.Anything, "admin").Return(&model.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}, nil)
	mdb.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, db.ErrUserNotFound)
	ctrl := newTestController(mdb)

	ctx := context.Background()

	token, user, err := ctrl.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.Username != "admin" || user.Role != model.RoleAdmin {
		t.Errorf("unexpected user: %+v", user)
	}

	// Wrong password and unknown user produce the same opaque error.
	if _, _, err := ctrl.Login(ctx, "admin", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, _, err := ctrl.Login(ctx, "ghost", "admin123"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	mdb := &mockdb.DB{}
	mdb.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	ctrl := newTestController(mdb)

	ctx := context.Background()

	user, err := ctrl.CreateUser(ctx, adminPrincipal(), "delegado5", "secret99", model.RoleTeamRep, i32(5))
	if err != nil {
		t.Fatalf("unexpected error creating user: %v", err)
	}
	if user.PasswordHash == "secret99" || user.PasswordHash == "" {
		t.Error("the password must be stored hashed")
	}
	if !auth.CheckPassword(user.PasswordHash, "secret99") {
		t.Error("the stored hash should verify the original password")
	}
}

func TestCreateUserValidation(t *testing.T) {
	ctrl := newTestController(&mockdb.DB{})
	ctx := context.Background()

	tests := map[string]struct {
		username string
		password string
		role     model.Role
		teamID   *int32
		exErrMsg string
	}{
		"short username": {username: "ab", password: "secret99", role: model.RoleTreasurer,
			exErrMsg: "username must be at least 3 characters"},
		"short password": {username: "tesorero", password: "12345", role: model.RoleTreasurer,
			exErrMsg: "password must be at least 6 characters"},
		"representative without team": {username: "delegado", password: "secret99", role: model.RoleTeamRep,
			exErrMsg: "a team representative needs a teamId"},
		"treasurer with team": {username: "tesorero", password: "secret99", role: model.RoleTreasurer, teamID: i32(5),
			exErrMsg: "only team representatives may be linked to a team"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ctrl.CreateUser(ctx, adminPrincipal(), tc.username, tc.password, tc.role, tc.teamID)
			if err == nil || err.Error() != tc.exErrMsg {
				t.Errorf("expected error %q, got %v", tc.exErrMsg, err)
			}
		})
	}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	ctrl := newTestController(&mockdb.DB{})
	ctx := context.Background()

	for _, p := range []*auth.Principal{treasurerPrincipal(), repPrincipal(5)} {
		if _, err := ctrl.CreateUser(ctx, p, "someone", "secret99", model.RoleTreasurer, nil); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden for %s, got %v", p.Role, err)
		}
	}
}
