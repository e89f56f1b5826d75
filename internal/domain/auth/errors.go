package auth

import "errors"

var (
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrEmailNotAllowed      = errors.New("email is not allowed to sign in")
	ErrInvalidAdminPassword = errors.New("invalid admin password")
)

var (
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrStateMismatch              = errors.New("oauth state mismatch")
)
