package auth

import "context"

type AuthRepository interface {
	// Login exchanges credentials for a backend token
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
}
