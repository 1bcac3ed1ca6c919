package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/containers"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/model"
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.DB.Close()
	db.container.Shutdown()
}

func Money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("error parsing test amount %q: %v", s, err)
	}
	return d
}

// InsertTestTournament creates a tournament and returns it with its id
// populated.
func InsertTestTournament(d db.DB, name string, day model.DayOfWeek, start time.Time) *model.Tournament {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t := &model.Tournament{
		Name:      name,
		Day:       day,
		Status:    model.TournamentActive,
		StartDate: start,
	}
	if err := d.CreateTournament(ctx, t); err != nil {
		log.Fatalf("error inserting test tournament: %v", err)
	}
	return t
}

// InsertTestTeam creates a team under the given tournament and returns
// it with its id populated.
func InsertTestTeam(d db.DB, tournamentID int32, name string, registration, arbitration, discount decimal.Decimal) *model.Team {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t := &model.Team{
		Name:            name,
		TournamentID:    tournamentID,
		RegistrationFee: registration,
		ArbitrationFee:  arbitration,
		DiscountAmount:  discount,
		Active:          true,
	}
	if err := d.CreateTeam(ctx, t); err != nil {
		log.Fatalf("error inserting test team: %v", err)
	}
	return t
}

func InsertTestPayment(d db.DB, teamID int32, amount decimal.Decimal, method model.PaymentMethod, matchday *int) *model.Payment {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := &model.Payment{
		TeamID:   teamID,
		Amount:   amount,
		Method:   method,
		Matchday: matchday,
	}
	if method == model.MethodTransfer {
		p.TransferRef = "OP-TEST"
	}
	if err := d.CreatePayment(ctx, p); err != nil {
		log.Fatalf("error inserting test payment: %v", err)
	}
	return p
}
