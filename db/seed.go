package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jazelams/soccer-app/model"
)

var seedTournaments = []struct {
	name string
	day  model.DayOfWeek
}{
	{"Torneo Lunes", model.DayMonday},
	{"Torneo Martes", model.DayTuesday},
	{"Torneo Miércoles", model.DayWednesday},
	{"Torneo Jueves", model.DayThursday},
	{"Torneo Viernes", model.DayFriday},
	{"Torneo Sábado", model.DaySaturday},
}

// EnsureSeedData creates the six weekday tournaments and the initial
// admin user if they do not exist yet. Safe to run on every startup.
func (db *postgresDB) EnsureSeedData(ctx context.Context, adminPasswordHash string) error {
	const tournamentQuery = `INSERT INTO tournaments (name, day, status)
								VALUES (@name, @day, @status)
								ON CONFLICT (day) DO NOTHING`

	for _, t := range seedTournaments {
		args := pgx.NamedArgs{
			"name":   t.name,
			"day":    string(t.day),
			"status": string(model.TournamentActive),
		}
		if _, err := db.pool.Exec(ctx, tournamentQuery, args); err != nil {
			return fmt.Errorf("error seeding tournament %s: %w", t.name, err)
		}
	}

	const userQuery = `INSERT INTO users (username, password_hash, role)
						VALUES ('admin', @passwordHash, @role)
						ON CONFLICT (username) DO NOTHING`

	args := pgx.NamedArgs{
		"passwordHash": adminPasswordHash,
		"role":         string(model.RoleAdmin),
	}
	if _, err := db.pool.Exec(ctx, userQuery, args); err != nil {
		return fmt.Errorf("error seeding admin user: %w", err)
	}
	return nil
}
