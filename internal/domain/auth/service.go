package auth

import "context"

type AuthService interface {
	// Login authenticates a staff member and issues an access token
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
