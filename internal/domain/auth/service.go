package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// AuthService defines authentication business logic
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// RefreshToken rotates an access token using a valid refresh token
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogle completes the OAuth2 code exchange and signs the user in
	LoginWithGoogle(ctx context.Context, token *oauth2.Token) (TokenResponse, error)
}
