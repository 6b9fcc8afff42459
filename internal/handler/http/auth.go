package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/handler/http/response"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sess, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := auth.LoginResponse{
		AccessToken: sess.Token(),
		TokenType:   "Bearer",
	}
	if exp, ok := sess.ExpiresAt(); ok {
		unix := exp.Unix()
		resp.ExpiresAt = &unix
	}
	response.Created(w, "User logged in successfully", resp)
}

// Logout implements AuthHandler. It runs behind SessionRequired.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrMissingToken)
		return
	}

	if err := a.authService.Logout(r.Context(), sess); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
