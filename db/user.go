package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jazelams/soccer-app/model"
)

func (db *postgresDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, role, team_id
					FROM users WHERE username = @username`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"username": username})

	var u model.User
	var role string
	var teamID pgtype.Int4
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &teamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	r, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	u.Role = r
	if teamID.Valid {
		id := teamID.Int32
		u.TeamID = &id
	}
	return &u, nil
}

func (db *postgresDB) CreateUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (username, password_hash, role, team_id)
					VALUES (@username, @passwordHash, @role, @teamID)
					RETURNING id`

	teamID := pgtype.Int4{}
	if u.TeamID != nil {
		teamID = pgtype.Int4{Int32: *u.TeamID, Valid: true}
	}

	args := pgx.NamedArgs{
		"username":     u.Username,
		"passwordHash": u.PasswordHash,
		"role":         string(u.Role),
		"teamID":       teamID,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&u.ID); err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}
