package controller

import (
	"time"

	"github.com/itbasis/go-clock"
	"github.com/shopspring/decimal"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/db/mockdb"
	"github.com/jazelams/soccer-app/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i32(n int32) *int32 {
	return &n
}

func md(n int) *int {
	return &n
}

func adminPrincipal() *auth.Principal {
	return &auth.Principal{UserID: 1, Username: "admin", Role: model.RoleAdmin}
}

func treasurerPrincipal() *auth.Principal {
	return &auth.Principal{UserID: 2, Username: "tesorero", Role: model.RoleTreasurer}
}

func repPrincipal(teamID int32) *auth.Principal {
	return &auth.Principal{UserID: 3, Username: "delegado", Role: model.RoleTeamRep, TeamID: &teamID}
}

func newTestController(db *mockdb.DB) C {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	tokens := auth.NewTokenService("test-secret", 24*time.Hour, mock)

	c, err := New(mock, tokens, db)
	if err != nil {
		panic(err)
	}
	return c
}

func statementTeam(id int32) *model.Team {
	return &model.Team{
		ID:              id,
		Name:            "Deportivo Norte",
		TournamentID:    1,
		RegistrationFee: dec("500"),
		ArbitrationFee:  dec("450"),
		DiscountAmount:  dec("100"),
		Tournament: &model.Tournament{
			ID:   1,
			Name: "Torneo Lunes",
			Day:  model.DayMonday,
		},
		Payments: []model.Payment{
			{ID: 2, Amount: dec("200"), Method: model.MethodCash, Matchday: md(1)},
			{ID: 1, Amount: dec("300"), Method: model.MethodCash},
		},
	}
}
