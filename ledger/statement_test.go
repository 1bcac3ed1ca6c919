package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/jazelams/soccer-app/model"
)

func testTournament() *model.Tournament {
	return &model.Tournament{
		ID:        4,
		Name:      "Torneo Jueves",
		Day:       model.DayThursday,
		Status:    model.TournamentActive,
		StartDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildStatement(t *testing.T) {
	tournament := testTournament()
	team := &model.Team{
		ID:              5,
		Name:            "Deportivo Norte",
		TournamentID:    tournament.ID,
		RegistrationFee: dec("500"),
		ArbitrationFee:  dec("450"),
		DiscountAmount:  dec("100"),
		MatchdayStatuses: model.MatchdayStatuses{
			1: "PLAYED",
			2: "SUSPENDED",
		},
		Tournament: tournament,
		Payments: []model.Payment{
			{
				ID:          11,
				Amount:      dec("200"),
				Method:      model.MethodTransfer,
				TransferRef: "OP-9913",
				Matchday:    md(1),
				RecordedAt:  time.Date(2024, 1, 8, 18, 0, 0, 0, time.UTC),
			},
			{
				ID:         10,
				Amount:     dec("300"),
				Method:     model.MethodCash,
				Notes:      "anticipo",
				RecordedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	st := BuildStatement(team)

	if st.TeamInfo.Name != "Deportivo Norte" || st.TeamInfo.Tournament != "Torneo Jueves" {
		t.Errorf("unexpected team info: %+v", st.TeamInfo)
	}
	if st.TeamInfo.Day != model.DayThursday || st.TeamInfo.TournamentID != 4 {
		t.Errorf("unexpected tournament attribution: %+v", st.TeamInfo)
	}

	fs := st.FinancialSummary
	if fs.BaseAmount != 950 || fs.TotalToPay != 850 || fs.TotalPaid != 500 || fs.Balance != 350 {
		t.Errorf("unexpected financial summary: %+v", fs)
	}
	if fs.Status != StatusPartial {
		t.Errorf("expected status PARTIAL, got %s", fs.Status)
	}

	if len(st.Payments) != 2 {
		t.Fatalf("expected 2 payment entries, got %d", len(st.Payments))
	}
	first := st.Payments[0]
	if first.ID != 11 || first.Amount != 200 || first.Method != model.MethodTransfer {
		t.Errorf("unexpected first payment entry: %+v", first)
	}
	if first.Reference == nil || *first.Reference != "OP-9913" {
		t.Errorf("expected transfer reference OP-9913, got %v", first.Reference)
	}
	if first.Matchday == nil || *first.Matchday != 1 {
		t.Errorf("expected matchday 1, got %v", first.Matchday)
	}
	second := st.Payments[1]
	if second.Reference != nil || second.Matchday != nil {
		t.Errorf("cash advance should have nil reference and matchday: %+v", second)
	}
	if second.Notes == nil || *second.Notes != "anticipo" {
		t.Errorf("expected notes to round trip, got %v", second.Notes)
	}

	if st.MatchdayStatuses[1] != "PLAYED" || st.MatchdayStatuses[2] != "SUSPENDED" {
		t.Errorf("unexpected matchday statuses: %v", st.MatchdayStatuses)
	}
}

func TestBuildStatementEmptyStatuses(t *testing.T) {
	team := &model.Team{
		RegistrationFee: dec("100"),
		ArbitrationFee:  dec("0"),
		DiscountAmount:  dec("0"),
		Tournament:      testTournament(),
	}

	st := BuildStatement(team)
	if st.MatchdayStatuses == nil {
		t.Error("matchdayStatuses should serialize as an empty object, not null")
	}
	if st.Payments == nil {
		t.Error("payments should serialize as an empty list, not null")
	}
}

func TestBuildRosterTotalsReconcile(t *testing.T) {
	tournament := testTournament()
	tournament.Teams = []model.Team{
		{
			ID: 1, Name: "Atlas",
			RegistrationFee: dec("500"), ArbitrationFee: dec("450"), DiscountAmount: dec("100"),
			Payments: []model.Payment{
				payment("300", nil),
				payment("200", md(1)),
			},
		},
		{
			ID: 2, Name: "Birmania FC",
			RegistrationFee: dec("500"), ArbitrationFee: dec("450"), DiscountAmount: dec("0"),
			Payments: []model.Payment{
				payment("950", nil),
			},
		},
		{
			ID: 3, Name: "Cachorros",
			RegistrationFee: dec("500"), ArbitrationFee: dec("450"), DiscountAmount: dec("0"),
			Payments: []model.Payment{
				payment("100", md(1)),
				payment("100", md(2)),
			},
		},
	}

	r := BuildRoster(tournament)

	if len(r.Teams) != 3 {
		t.Fatalf("expected 3 roster rows, got %d", len(r.Teams))
	}

	// Column totals must equal the sum of the row values they aggregate.
	var toPay, general, paid, balance float64
	perMatchday := make(map[int]float64)
	for _, row := range r.Teams {
		toPay += row.TotalToPay
		general += row.GeneralPayments
		paid += row.TotalPaid
		balance += row.Balance
		for mdNum, amount := range row.PerMatchdayPaid {
			perMatchday[mdNum] += amount
		}
	}

	if r.Totals.TotalToPay != toPay || r.Totals.TotalToPay != 2750 {
		t.Errorf("totals.totalToPay expected 2750, got %v", r.Totals.TotalToPay)
	}
	if r.Totals.GeneralPayments != general || r.Totals.GeneralPayments != 1250 {
		t.Errorf("totals.generalPayments expected 1250, got %v", r.Totals.GeneralPayments)
	}
	if r.Totals.TotalPaid != paid || r.Totals.TotalPaid != 1650 {
		t.Errorf("totals.totalPaid expected 1650, got %v", r.Totals.TotalPaid)
	}
	if r.Totals.Balance != balance || r.Totals.Balance != 1100 {
		t.Errorf("totals.balance expected 1100, got %v", r.Totals.Balance)
	}
	for mdNum, amount := range perMatchday {
		if math.Abs(r.Totals.PerMatchdayPaid[mdNum]-amount) > 1e-9 {
			t.Errorf("totals.perMatchdayPaid[%d] expected %v, got %v", mdNum, amount, r.Totals.PerMatchdayPaid[mdNum])
		}
	}
	if r.Totals.PerMatchdayPaid[1] != 300 || r.Totals.PerMatchdayPaid[2] != 100 {
		t.Errorf("unexpected per-matchday totals: %v", r.Totals.PerMatchdayPaid)
	}
}

func TestBuildRosterMatchdayDates(t *testing.T) {
	r := BuildRoster(testTournament())

	if len(r.MatchdayDates) != 10 {
		t.Fatalf("expected 10 matchday dates, got %d", len(r.MatchdayDates))
	}
	if r.MatchdayDates[0] == nil || *r.MatchdayDates[0] != "2024-01-04" {
		t.Errorf("matchday 1 expected 2024-01-04, got %v", r.MatchdayDates[0])
	}
	if r.MatchdayDates[9] == nil || *r.MatchdayDates[9] != "2024-03-07" {
		t.Errorf("matchday 10 expected 2024-03-07, got %v", r.MatchdayDates[9])
	}

	noDate := testTournament()
	noDate.StartDate = time.Time{}
	r = BuildRoster(noDate)
	for i, d := range r.MatchdayDates {
		if d != nil {
			t.Errorf("matchday %d expected null date, got %v", i+1, *d)
		}
	}
	if r.Tournament.StartDate != nil {
		t.Errorf("startDate expected null, got %v", *r.Tournament.StartDate)
	}
}
