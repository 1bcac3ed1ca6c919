package web

import (
	"time"

	"github.com/jazelams/soccer-app/model"
)

// JSON shapes for the entities the mutation endpoints return. Money
// fields are converted from exact decimals to JSON numbers here, at the
// serialization boundary.

type tournamentResponse struct {
	ID        int32                  `json:"id"`
	Name      string                 `json:"name"`
	Day       model.DayOfWeek        `json:"day"`
	Status    model.TournamentStatus `json:"status"`
	StartDate *string                `json:"startDate"`
	TeamCount int                    `json:"teamCount"`
}

func toTournamentResponse(t *model.Tournament) tournamentResponse {
	resp := tournamentResponse{
		ID:        t.ID,
		Name:      t.Name,
		Day:       t.Day,
		Status:    t.Status,
		TeamCount: t.TeamCount,
	}
	if !t.StartDate.IsZero() {
		s := t.StartDate.Format(time.DateOnly)
		resp.StartDate = &s
	}
	return resp
}

type teamResponse struct {
	ID               int32                  `json:"id"`
	Name             string                 `json:"name"`
	TournamentID     int32                  `json:"tournamentId"`
	RegistrationFee  float64                `json:"registrationFee"`
	ArbitrationFee   float64                `json:"arbitrationFee"`
	DiscountAmount   float64                `json:"discountAmount"`
	MatchdayStatuses model.MatchdayStatuses `json:"matchdayStatuses"`
	Active           bool                   `json:"active"`
}

func toTeamResponse(t *model.Team) teamResponse {
	statuses := t.MatchdayStatuses
	if statuses == nil {
		statuses = model.MatchdayStatuses{}
	}
	return teamResponse{
		ID:               t.ID,
		Name:             t.Name,
		TournamentID:     t.TournamentID,
		RegistrationFee:  t.RegistrationFee.InexactFloat64(),
		ArbitrationFee:   t.ArbitrationFee.InexactFloat64(),
		DiscountAmount:   t.DiscountAmount.InexactFloat64(),
		MatchdayStatuses: statuses,
		Active:           t.Active,
	}
}

type paymentResponse struct {
	ID           int32               `json:"id"`
	TeamID       int32               `json:"teamId"`
	Amount       float64             `json:"amount"`
	Method       model.PaymentMethod `json:"method"`
	TransferRef  *string             `json:"transferRef"`
	TransferDate *string             `json:"transferDate"`
	Matchday     *int                `json:"matchday"`
	Notes        *string             `json:"notes"`
	RecordedAt   time.Time           `json:"recordedAt"`
}

func toPaymentResponse(p *model.Payment) paymentResponse {
	resp := paymentResponse{
		ID:         p.ID,
		TeamID:     p.TeamID,
		Amount:     p.Amount.InexactFloat64(),
		Method:     p.Method,
		Matchday:   p.Matchday,
		RecordedAt: p.RecordedAt,
	}
	if p.TransferRef != "" {
		ref := p.TransferRef
		resp.TransferRef = &ref
	}
	if !p.TransferDate.IsZero() {
		d := p.TransferDate.Format(time.DateOnly)
		resp.TransferDate = &d
	}
	if p.Notes != "" {
		notes := p.Notes
		resp.Notes = &notes
	}
	return resp
}

type userResponse struct {
	ID       int32      `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	TeamID   *int32     `json:"teamId,omitempty"`
}

func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		TeamID:   u.TeamID,
	}
}
