package auth

import (
	"context"
	"log/slog"

	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

type AuthServiceImpl struct {
	authRepo auth.AuthRepository
	registry *session.Registry
}

func NewAuthService(authRepo auth.AuthRepository, registry *session.Registry) auth.AuthService {
	return &AuthServiceImpl{
		authRepo: authRepo,
		registry: registry,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := s.authRepo.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	sess := session.FromToken(result.Token)
	if !sess.IsAuthenticated() {
		return nil, auth.ErrTokenExpired
	}
	slog.Info("User logged in", "email", req.Email)
	return sess, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.Token() == "" {
		return auth.ErrMissingToken
	}

	s.registry.Revoke(sess.Token())
	sess.Clear()
	return nil
}

// Authenticate implements auth.AuthService.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, auth.ErrMissingToken
	}
	if s.registry.IsRevoked(token) {
		return nil, auth.ErrTokenRevoked
	}

	sess := session.FromToken(token)
	if !sess.IsAuthenticated() {
		return nil, auth.ErrTokenExpired
	}
	return sess, nil
}
