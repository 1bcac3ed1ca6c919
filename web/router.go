package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/jazelams/soccer-app/auth"
	"github.com/jazelams/soccer-app/controller"
)

func getRouter(ctrl controller.C, tokens auth.TokenService, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", pingHandler(render))
		r.Post("/login", loginHandler(ctrl, render))

		// Everything below requires an authenticated principal.
		r.Group(func(r chi.Router) {
			r.Use(authenticate(tokens, render))

			r.Post("/users", createUserHandler(ctrl, render))

			r.Route("/tournaments", func(r chi.Router) {
				r.Get("/", listTournamentsHandler(ctrl, render))
				r.Post("/", createTournamentHandler(ctrl, render))
				r.Get("/{tournamentID:\\d+}", tournamentRosterHandler(ctrl, render))
				r.Put("/{tournamentID:\\d+}", updateTournamentHandler(ctrl, render))
			})

			r.Route("/teams", func(r chi.Router) {
				r.Post("/", createTeamHandler(ctrl, render))
				r.Put("/{teamID:\\d+}", updateTeamHandler(ctrl, render))
				r.Delete("/{teamID:\\d+}", deleteTeamHandler(ctrl, render))
				r.Get("/{teamID:\\d+}/statement", teamStatementHandler(ctrl, render))
				r.Patch("/{teamID:\\d+}/matchday-status", matchdayStatusHandler(ctrl, render))
			})

			r.Post("/payments", createPaymentHandler(ctrl, render))
		})
	})

	return r
}
