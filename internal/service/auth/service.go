package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwt.Service
	postgresql.JWTRepository
	allowed map[string]struct{}
	withTx  func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAuthService(db *database.DB, jwtService jwt.Service, jwtRepository postgresql.JWTRepository, allowedEmails []string) auth.AuthService {
	return &AuthServiceImpl{
		Service:       jwtService,
		JWTRepository: jwtRepository,
		allowed:       allowList(allowedEmails),
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func allowList(emails []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		allowed[normalizeEmail(email)] = struct{}{}
	}
	return allowed
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailAllowed implements auth.AuthService.
func (a *AuthServiceImpl) IsEmailAllowed(email string) bool {
	_, ok := a.allowed[normalizeEmail(email)]
	return ok
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, req auth.GoogleLoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if !a.IsEmailAllowed(req.Email) {
		return auth.TokenResponse{}, auth.ErrEmailNotAllowed
	}
	if !req.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	var tokenResponse auth.TokenResponse
	err := a.withTx(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(req.Email, req.Name)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(req.Email)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, req.Email, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	email, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, errors.Join(auth.ErrInvalidToken, err)
	}

	_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check if refresh token is revoked: %w", err)
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// The allow-list may have shrunk since the session started.
	if !a.IsEmailAllowed(email) {
		return auth.AccessTokenResponse{}, auth.ErrEmailNotAllowed
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(email, "")
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return a.withTx(ctx, func(txCtx context.Context) error {
		_, isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(txCtx, token)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.JWTRepository.RevokeRefreshToken(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

type adminVerifier struct {
	hash []byte
}

// NewAdminVerifier checks delete passwords against a bcrypt hash.
func NewAdminVerifier(passwordHash string) auth.AdminVerifier {
	return &adminVerifier{hash: []byte(passwordHash)}
}

func (v *adminVerifier) VerifyAdminPassword(password string) error {
	if password == "" {
		return auth.ErrInvalidAdminPassword
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return auth.ErrInvalidAdminPassword
	}
	return nil
}
