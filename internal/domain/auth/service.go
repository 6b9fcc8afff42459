package auth

import (
	"context"

	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

type AuthService interface {
	// Login signs in against the backend and returns a session holding the token
	Login(ctx context.Context, req LoginRequest) (*session.Session, error)

	// Logout clears the session and refuses its token from now on
	Logout(ctx context.Context, sess *session.Session) error

	// Authenticate checks a presented bearer token and returns its session
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}
