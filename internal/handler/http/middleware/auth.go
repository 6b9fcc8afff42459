package middleware

import (
	"net/http"

	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/handler/http/response"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
)

// SessionRequired authenticates the bearer token and puts the caller's
// session in the request context.
func SessionRequired(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)

			sess, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		}
		return http.HandlerFunc(hfn)
	}
}
