package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"

	"github.com/jazelams/soccer-app/controller"
	"github.com/jazelams/soccer-app/db"
	"github.com/jazelams/soccer-app/model"
)

func pingHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		token, user, err := ctrl.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, controller.ErrBadCredentials) {
				render.JSON(w, http.StatusUnauthorized, errorBody("invalid credentials"))
				return
			}
			writeError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"token": token,
			"user":  toUserResponse(user),
		})
	}
}

func createUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
			TeamID   *int32 `json:"teamId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		role, err := model.ParseRole(req.Role)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		user, err := ctrl.CreateUser(r.Context(), principalFrom(r), req.Username, req.Password, role, req.TeamID)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, toUserResponse(user))
	}
}

func listTournamentsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := ctrl.ListTournaments(r.Context(), principalFrom(r))
		if err != nil {
			writeError(render, w, err)
			return
		}

		resp := make([]tournamentResponse, 0, len(tournaments))
		for i := range tournaments {
			resp = append(resp, toTournamentResponse(&tournaments[i]))
		}
		render.JSON(w, http.StatusOK, resp)
	}
}

func createTournamentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name      string `json:"name"`
			Day       string `json:"day"`
			StartDate string `json:"startDate"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		startDate, err := parseDate(req.StartDate)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		tournament, err := ctrl.CreateTournament(r.Context(), principalFrom(r), req.Name, model.DayOfWeek(req.Day), startDate)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, toTournamentResponse(tournament))
	}
}

func updateTournamentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "tournamentID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		var req struct {
			Name      *string `json:"name"`
			StartDate *string `json:"startDate"`
			Status    *string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		upd := db.TournamentUpdate{Name: req.Name}
		if req.StartDate != nil {
			d, err := parseDate(*req.StartDate)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
				return
			}
			upd.StartDate = &d
		}
		if req.Status != nil {
			s := model.TournamentStatus(*req.Status)
			upd.Status = &s
		}

		tournament, err := ctrl.UpdateTournament(r.Context(), principalFrom(r), id, upd)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, toTournamentResponse(tournament))
	}
}

func tournamentRosterHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "tournamentID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		roster, err := ctrl.GetTournamentRoster(r.Context(), principalFrom(r), id)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, roster)
	}
}

func createTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name            string  `json:"name"`
			TournamentID    int32   `json:"tournamentId"`
			RegistrationFee float64 `json:"registrationFee"`
			ArbitrationFee  float64 `json:"arbitrationFee"`
			DiscountAmount  float64 `json:"discountAmount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		team, err := ctrl.CreateTeam(r.Context(), principalFrom(r), req.Name, req.TournamentID,
			moneyFromFloat(req.RegistrationFee), moneyFromFloat(req.ArbitrationFee), moneyFromFloat(req.DiscountAmount))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, toTeamResponse(team))
	}
}

func updateTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "teamID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		var req struct {
			Name            *string  `json:"name"`
			RegistrationFee *float64 `json:"registrationFee"`
			ArbitrationFee  *float64 `json:"arbitrationFee"`
			DiscountAmount  *float64 `json:"discountAmount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		upd := db.TeamUpdate{Name: req.Name}
		if req.RegistrationFee != nil {
			d := moneyFromFloat(*req.RegistrationFee)
			upd.RegistrationFee = &d
		}
		if req.ArbitrationFee != nil {
			d := moneyFromFloat(*req.ArbitrationFee)
			upd.ArbitrationFee = &d
		}
		if req.DiscountAmount != nil {
			d := moneyFromFloat(*req.DiscountAmount)
			upd.DiscountAmount = &d
		}

		team, err := ctrl.UpdateTeam(r.Context(), principalFrom(r), id, upd)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, toTeamResponse(team))
	}
}

func deleteTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "teamID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		if err := ctrl.DeleteTeam(r.Context(), principalFrom(r), id); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"message": "team deleted"})
	}
}

func teamStatementHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "teamID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		statement, err := ctrl.GetTeamStatement(r.Context(), principalFrom(r), id)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, statement)
	}
}

func matchdayStatusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "teamID")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		var req struct {
			Matchday any    `json:"matchday"`
			Status   string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		matchday, err := parseMatchday(req.Matchday)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		if matchday == nil {
			render.JSON(w, http.StatusBadRequest, errorBody("matchday and status required"))
			return
		}

		statuses, err := ctrl.UpdateMatchdayStatus(r.Context(), principalFrom(r), id, *matchday, req.Status)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"statuses": statuses,
		})
	}
}

func createPaymentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			TeamID       int32   `json:"teamId"`
			Amount       float64 `json:"amount"`
			Method       string  `json:"method"`
			TransferRef  string  `json:"transferRef"`
			TransferDate string  `json:"transferDate"`
			Matchday     any     `json:"matchday"`
			Notes        string  `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		matchday, err := parseMatchday(req.Matchday)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		transferDate, err := parseDate(req.TransferDate)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		payment, err := ctrl.RecordPayment(r.Context(), principalFrom(r), controller.PaymentInput{
			TeamID:       req.TeamID,
			Amount:       moneyFromFloat(req.Amount),
			Method:       model.PaymentMethod(req.Method),
			TransferRef:  req.TransferRef,
			TransferDate: transferDate,
			Matchday:     matchday,
			Notes:        req.Notes,
		})
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, toPaymentResponse(payment))
	}
}

func writeError(render *render.Render, w http.ResponseWriter, err error) {
	switch {
	case controller.IsValidationError(err):
		render.JSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, controller.ErrForbidden):
		render.JSON(w, http.StatusForbidden, errorBody("Forbidden: Insufficient permissions"))
	case errors.Is(err, db.ErrTeamNotFound),
		errors.Is(err, db.ErrTournamentNotFound),
		errors.Is(err, db.ErrUserNotFound):
		render.JSON(w, http.StatusNotFound, errorBody("not found"))
	default:
		log.Printf("internal error handling request: %v", err)
		render.JSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func parseID(r *http.Request, param string) (int32, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %v", param, err)
	}
	return int32(id), nil
}

// parseMatchday accepts the matchday field as a JSON number or a numeric
// string. The legacy clients sent both forms; both normalize to the same
// integer here. Nil, empty string, and 0 all mean "no matchday".
func parseMatchday(v any) (*int, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if val == 0 {
			return nil, nil
		}
		if val != math.Trunc(val) {
			return nil, fmt.Errorf("matchday must be a whole number, got %v", val)
		}
		md := int(val)
		return &md, nil
	case string:
		if val == "" {
			return nil, nil
		}
		md, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("matchday must be a number, got %q", val)
		}
		return &md, nil
	}
	return nil, fmt.Errorf("matchday must be a number, got %T", v)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	// Accept a plain date or a full RFC 3339 timestamp; only the
	// calendar day matters.
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing date, expected YYYY-MM-DD: %v", err)
	}
	return t, nil
}

// Request amounts arrive as JSON numbers. Rounding to cents here keeps
// float noise out of the exact-decimal domain values.
func moneyFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
