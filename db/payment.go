package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jazelams/soccer-app/model"
)

func (db *postgresDB) CreatePayment(ctx context.Context, p *model.Payment) error {
	const query = `INSERT INTO payments (team_id, amount, method, transfer_ref,
						transfer_date, matchday, notes, recorded_at)
					VALUES (@teamID, @amount, @method, @transferRef,
						@transferDate, @matchday, @notes, @recordedAt)
					RETURNING id`

	transferRef := pgtype.Text{}
	if p.TransferRef != "" {
		transferRef = pgtype.Text{String: p.TransferRef, Valid: true}
	}
	transferDate := pgtype.Date{}
	if !p.TransferDate.IsZero() {
		transferDate = pgtype.Date{Time: p.TransferDate, Valid: true}
	}
	matchday := pgtype.Int4{}
	if p.Matchday != nil {
		matchday = pgtype.Int4{Int32: int32(*p.Matchday), Valid: true}
	}
	notes := pgtype.Text{}
	if p.Notes != "" {
		notes = pgtype.Text{String: p.Notes, Valid: true}
	}

	p.RecordedAt = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"teamID":       p.TeamID,
		"amount":       p.Amount.String(),
		"method":       string(p.Method),
		"transferRef":  transferRef,
		"transferDate": transferDate,
		"matchday":     matchday,
		"notes":        notes,
		"recordedAt":   p.RecordedAt,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID); err != nil {
		return fmt.Errorf("error inserting payment: %w", err)
	}
	return nil
}
