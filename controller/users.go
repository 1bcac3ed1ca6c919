package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/model"
)

func (c *controller) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	u, err := c.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrBadCredentials
	}

	token, err := c.tokens.Generate(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (c *controller) CreateUser(ctx context.Context, p *auth.Principal, username, password string, role model.Role, teamID *int32) (*model.User, error) {
	// User creation is an administrative action; there is no public
	// registration path.
	if p.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, validationErrorf("username must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, validationErrorf("password must be at least 6 characters")
	}
	if role == model.RoleTeamRep && teamID == nil {
		return nil, validationErrorf("a team representative needs a teamId")
	}
	if role != model.RoleTeamRep && teamID != nil {
		return nil, validationErrorf("only team representatives may be linked to a team")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		TeamID:       teamID,
	}
	if err := c.db.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
