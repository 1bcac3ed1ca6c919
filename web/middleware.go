package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/unrolled/render"

	"github.com/jazelams/soccer-app/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// authenticate resolves the Bearer token into a principal and stores it
// on the request context. Requests without a valid token never reach the
// handlers, so authorization checks can assume a resolved principal.
func authenticate(tokens auth.TokenService, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.JSON(w, http.StatusUnauthorized, errorBody("Unauthorized: No token provided"))
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				render.JSON(w, http.StatusUnauthorized, errorBody("Unauthorized: Invalid authorization header"))
				return
			}

			p, err := tokens.Validate(token)
			if err != nil {
				render.JSON(w, http.StatusUnauthorized, errorBody("Unauthorized: Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func principalFrom(r *http.Request) *auth.Principal {
	p, _ := r.Context().Value(principalKey).(*auth.Principal)
	return p
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
