package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/model"
)

// The view types below are what the API serializes. Amounts are computed
// in exact decimals and converted to JSON numbers only here, at the
// presentation boundary.

type Statement struct {
	TeamInfo         TeamInfo               `json:"teamInfo"`
	FinancialSummary FinancialSummary       `json:"financialSummary"`
	Payments         []PaymentEntry         `json:"payments"`
	MatchdayStatuses model.MatchdayStatuses `json:"matchdayStatuses"`
}

type TeamInfo struct {
	ID           int32           `json:"id"`
	Name         string          `json:"name"`
	Tournament   string          `json:"tournament"`
	TournamentID int32           `json:"tournamentId"`
	Day          model.DayOfWeek `json:"day"`
}

type FinancialSummary struct {
	BaseAmount          float64 `json:"baseAmount"`
	Registration        float64 `json:"registration"`
	Arbitration         float64 `json:"arbitration"`
	Discount            float64 `json:"discount"`
	TotalToPay          float64 `json:"totalToPay"`
	TotalPaid           float64 `json:"totalPaid"`
	Balance             float64 `json:"balance"`
	Status              Status  `json:"status"`
	DiscountExceedsBase bool    `json:"discountExceedsBase,omitempty"`
}

type PaymentEntry struct {
	ID        int32               `json:"id"`
	Amount    float64             `json:"amount"`
	Method    model.PaymentMethod `json:"method"`
	Reference *string             `json:"reference"`
	Date      time.Time           `json:"date"`
	Matchday  *int                `json:"matchday"`
	Notes     *string             `json:"notes"`
}

// BuildStatement composes the full statement view for one team. The team
// must already carry its tournament and its payments, most recent first.
func BuildStatement(t *model.Team) *Statement {
	summary := Summarize(t.RegistrationFee, t.ArbitrationFee, t.DiscountAmount, t.Payments)

	st := &Statement{
		TeamInfo: TeamInfo{
			ID:           t.ID,
			Name:         t.Name,
			Tournament:   t.Tournament.Name,
			TournamentID: t.Tournament.ID,
			Day:          t.Tournament.Day,
		},
		FinancialSummary: financialSummary(summary),
		Payments:         make([]PaymentEntry, 0, len(t.Payments)),
		MatchdayStatuses: t.MatchdayStatuses,
	}
	if st.MatchdayStatuses == nil {
		st.MatchdayStatuses = model.MatchdayStatuses{}
	}

	for i := range t.Payments {
		p := &t.Payments[i]
		entry := PaymentEntry{
			ID:       p.ID,
			Amount:   p.Amount.InexactFloat64(),
			Method:   p.Method,
			Date:     p.EffectiveDate(),
			Matchday: p.Matchday,
		}
		if p.TransferRef != "" {
			ref := p.TransferRef
			entry.Reference = &ref
		}
		if p.Notes != "" {
			notes := p.Notes
			entry.Notes = &notes
		}
		st.Payments = append(st.Payments, entry)
	}

	return st
}

func financialSummary(s Summary) FinancialSummary {
	return FinancialSummary{
		BaseAmount:          s.BaseAmount.InexactFloat64(),
		Registration:        s.Registration.InexactFloat64(),
		Arbitration:         s.Arbitration.InexactFloat64(),
		Discount:            s.Discount.InexactFloat64(),
		TotalToPay:          s.TotalToPay.InexactFloat64(),
		TotalPaid:           s.TotalPaid.InexactFloat64(),
		Balance:             s.Balance.InexactFloat64(),
		Status:              s.Status,
		DiscountExceedsBase: s.DiscountExceedsBase,
	}
}

type Roster struct {
	Tournament RosterTournament `json:"tournament"`
	// MatchdayDates holds the ten scheduled fixture dates in YYYY-MM-DD
	// form, or null where no start date has been set.
	MatchdayDates []*string    `json:"matchdayDates"`
	Teams         []RosterRow  `json:"teams"`
	Totals        RosterTotals `json:"totals"`
}

type RosterTournament struct {
	ID        int32                  `json:"id"`
	Name      string                 `json:"name"`
	Day       model.DayOfWeek        `json:"day"`
	Status    model.TournamentStatus `json:"status"`
	StartDate *string                `json:"startDate"`
}

type RosterRow struct {
	TeamID           int32                  `json:"teamId"`
	Name             string                 `json:"name"`
	TotalToPay       float64                `json:"totalToPay"`
	GeneralPayments  float64                `json:"generalPayments"`
	PerMatchdayPaid  map[int]float64        `json:"perMatchdayPaid"`
	TotalPaid        float64                `json:"totalPaid"`
	Balance          float64                `json:"balance"`
	Status           Status                 `json:"status"`
	MatchdayStatuses model.MatchdayStatuses `json:"matchdayStatuses"`
}

type RosterTotals struct {
	TotalToPay      float64         `json:"totalToPay"`
	GeneralPayments float64         `json:"generalPayments"`
	PerMatchdayPaid map[int]float64 `json:"perMatchdayPaid"`
	TotalPaid       float64         `json:"totalPaid"`
	Balance         float64         `json:"balance"`
}

// BuildRoster composes the tournament-wide view: one row per team plus
// column totals. The totals are sums over the same Summarize outputs the
// rows are built from, so they always reconcile with the individual
// statements.
func BuildRoster(t *model.Tournament) *Roster {
	r := &Roster{
		Tournament: RosterTournament{
			ID:        t.ID,
			Name:      t.Name,
			Day:       t.Day,
			Status:    t.Status,
			StartDate: formatDate(t.StartDate),
		},
		MatchdayDates: make([]*string, 0, model.MatchdayCount),
		Teams:         make([]RosterRow, 0, len(t.Teams)),
	}

	for _, d := range MatchdayDates(t.StartDate) {
		r.MatchdayDates = append(r.MatchdayDates, formatDate(d))
	}

	var totalToPay, totalGeneral, totalPaid, totalBalance decimal.Decimal
	perMatchday := make(map[int]decimal.Decimal, model.MatchdayCount)
	for i := 1; i <= model.MatchdayCount; i++ {
		perMatchday[i] = decimal.Zero
	}

	for i := range t.Teams {
		team := &t.Teams[i]
		s := Summarize(team.RegistrationFee, team.ArbitrationFee, team.DiscountAmount, team.Payments)

		row := RosterRow{
			TeamID:           team.ID,
			Name:             team.Name,
			TotalToPay:       s.TotalToPay.InexactFloat64(),
			GeneralPayments:  s.GeneralPayments.InexactFloat64(),
			PerMatchdayPaid:  make(map[int]float64, model.MatchdayCount),
			TotalPaid:        s.TotalPaid.InexactFloat64(),
			Balance:          s.Balance.InexactFloat64(),
			Status:           s.Status,
			MatchdayStatuses: team.MatchdayStatuses,
		}
		if row.MatchdayStatuses == nil {
			row.MatchdayStatuses = model.MatchdayStatuses{}
		}
		for md, amount := range s.PerMatchdayPaid {
			row.PerMatchdayPaid[md] = amount.InexactFloat64()
			perMatchday[md] = perMatchday[md].Add(amount)
		}
		r.Teams = append(r.Teams, row)

		totalToPay = totalToPay.Add(s.TotalToPay)
		totalGeneral = totalGeneral.Add(s.GeneralPayments)
		totalPaid = totalPaid.Add(s.TotalPaid)
		totalBalance = totalBalance.Add(s.Balance)
	}

	r.Totals = RosterTotals{
		TotalToPay:      totalToPay.InexactFloat64(),
		GeneralPayments: totalGeneral.InexactFloat64(),
		PerMatchdayPaid: make(map[int]float64, model.MatchdayCount),
		TotalPaid:       totalPaid.InexactFloat64(),
		Balance:         totalBalance.InexactFloat64(),
	}
	for md, amount := range perMatchday {
		r.Totals.PerMatchdayPaid[md] = amount.InexactFloat64()
	}

	return r
}

func formatDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
