package auth

import (
	"context"
)

type AuthService interface {
	// LoginWithGoogle issues tokens for an allow-listed Google account
	LoginWithGoogle(ctx context.Context, req GoogleLoginRequest, session SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	IsEmailAllowed(email string) bool
}

// AdminVerifier guards destructive operations behind the admin password.
type AdminVerifier interface {
	VerifyAdminPassword(password string) error
}
