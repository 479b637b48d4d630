package auth

import "context"

// AuthService defines the session boundary. Credential storage and
// hashing live behind the user repository; the attendance core only
// ever sees the claims the tokens carry.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
