package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jazelams/soccer-app/model"
)

func (db *postgresDB) ListTournaments(ctx context.Context) ([]model.Tournament, error) {
	const query = `SELECT t.id, t.name, t.day, t.status, t.start_date,
						(SELECT COUNT(*) FROM teams WHERE tournament_id = t.id) AS team_count
					FROM tournaments t
					ORDER BY t.id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing tournaments: %w", err)
	}
	defer rows.Close()

	results := make([]model.Tournament, 0, 8)
	for rows.Next() {
		var t model.Tournament
		var day, status string
		var startDate pgtype.Date
		var count int64
		if err := rows.Scan(&t.ID, &t.Name, &day, &status, &startDate, &count); err != nil {
			return nil, fmt.Errorf("error scanning tournament: %w", err)
		}
		t.Day = model.DayOfWeek(day)
		t.Status = model.TournamentStatus(status)
		if startDate.Valid {
			t.StartDate = startDate.Time.UTC()
		}
		t.TeamCount = int(count)
		results = append(results, t)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetTournament(ctx context.Context, id int32) (*model.Tournament, error) {
	const query = `SELECT id, name, day, status, start_date
					FROM tournaments WHERE id = @id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTournament(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("error loading tournament: %w", err)
	}
	return t, nil
}

func (db *postgresDB) GetTournamentWithTeams(ctx context.Context, id int32) (*model.Tournament, error) {
	t, err := db.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	const teamsQuery = `SELECT id, name, tournament_id, registration_fee::text,
							arbitration_fee::text, discount_amount::text,
							matchday_statuses, active, created
						FROM teams WHERE tournament_id = @id
						ORDER BY name ASC`

	rows, err := db.pool.Query(ctx, teamsQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error loading teams for tournament %d: %w", id, err)
	}
	defer rows.Close()

	teamIndex := make(map[int32]int)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teamIndex[team.ID] = len(t.Teams)
		t.Teams = append(t.Teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(t.Teams) == 0 {
		return t, nil
	}

	const paymentsQuery = `SELECT id, team_id, amount::text, method, transfer_ref,
								transfer_date, matchday, notes, recorded_at
							FROM payments
							WHERE team_id = ANY(@teamIDs)
							ORDER BY recorded_at DESC`

	teamIDs := make([]int32, 0, len(t.Teams))
	for i := range t.Teams {
		teamIDs = append(teamIDs, t.Teams[i].ID)
	}

	prows, err := db.pool.Query(ctx, paymentsQuery, pgx.NamedArgs{"teamIDs": teamIDs})
	if err != nil {
		return nil, fmt.Errorf("error loading payments for tournament %d: %w", id, err)
	}
	defer prows.Close()

	for prows.Next() {
		p, err := scanPayment(prows)
		if err != nil {
			return nil, err
		}
		if idx, ok := teamIndex[p.TeamID]; ok {
			t.Teams[idx].Payments = append(t.Teams[idx].Payments, *p)
		}
	}
	return t, prows.Err()
}

func (db *postgresDB) CreateTournament(ctx context.Context, t *model.Tournament) error {
	const query = `INSERT INTO tournaments (name, day, status, start_date)
					VALUES (@name, @day, @status, @startDate)
					RETURNING id`

	startDate := pgtype.Date{}
	if !t.StartDate.IsZero() {
		startDate = pgtype.Date{Time: t.StartDate, Valid: true}
	}

	args := pgx.NamedArgs{
		"name":      t.Name,
		"day":       string(t.Day),
		"status":    string(t.Status),
		"startDate": startDate,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID); err != nil {
		return fmt.Errorf("error inserting tournament: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdateTournament(ctx context.Context, id int32, upd TournamentUpdate) (*model.Tournament, error) {
	sets := make([]string, 0, 3)
	args := pgx.NamedArgs{"id": id}

	if upd.Name != nil {
		sets = append(sets, "name = @name")
		args["name"] = *upd.Name
	}
	if upd.StartDate != nil {
		sets = append(sets, "start_date = @startDate")
		args["startDate"] = pgtype.Date{Time: *upd.StartDate, Valid: true}
	}
	if upd.Status != nil {
		sets = append(sets, "status = @status")
		args["status"] = string(*upd.Status)
	}
	if len(sets) == 0 {
		return db.GetTournament(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE tournaments SET %s WHERE id = @id
							RETURNING id, name, day, status, start_date`, strings.Join(sets, ", "))

	t, err := scanTournament(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("error updating tournament: %w", err)
	}
	return t, nil
}

func scanTournament(row pgx.Row) (*model.Tournament, error) {
	var t model.Tournament
	var day, status string
	var startDate pgtype.Date
	if err := row.Scan(&t.ID, &t.Name, &day, &status, &startDate); err != nil {
		return nil, err
	}
	t.Day = model.DayOfWeek(day)
	t.Status = model.TournamentStatus(status)
	if startDate.Valid {
		t.StartDate = startDate.Time.UTC()
	}
	return &t, nil
}
