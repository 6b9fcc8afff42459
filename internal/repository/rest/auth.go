package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

type authRepositoryImpl struct {
	client *backend.Client
}

func NewAuthRepository(client *backend.Client) auth.AuthRepository {
	return &authRepositoryImpl{client: client}
}

// Login implements auth.AuthRepository. It runs without a session.
func (r *authRepositoryImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	var result auth.LoginResult
	if err := r.client.Post(ctx, nil, "/auth/login", req, &result); err != nil {
		if backend.IsStatus(err, http.StatusUnauthorized) || backend.IsStatus(err, http.StatusBadRequest) {
			return auth.LoginResult{}, fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, err)
		}
		return auth.LoginResult{}, fmt.Errorf("failed to login: %w", err)
	}
	if result.Token == "" {
		return auth.LoginResult{}, fmt.Errorf("%w: login response carries no token", backend.ErrInvalidResponse)
	}
	return result, nil
}
