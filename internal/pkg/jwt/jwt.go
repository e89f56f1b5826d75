package jwt

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Token types carried in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
	TypeStream  = "stream"
)

const streamTokenTTL = 5 * time.Minute

const refreshCookieName = "refresh_token"

var ErrMissingEmailClaim = errors.New("email claim is missing or invalid")

type Service interface {
	GenerateAccessToken(email string, name string) (token string, expiresAt int64, err error)
	GenerateRefreshToken(email string) (token string, expiresAt int64, err error)
	// ValidateRefreshToken verifies signature, expiry and type, and returns the email claim.
	ValidateRefreshToken(tokenString string) (email string, err error)
	GenerateStreamToken(email string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (email string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearRefreshTokenCookie() *http.Cookie
	RefreshTokenCookieName() string
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	// PruneRevoked forgets revoked tokens recorded before the cutoff.
	PruneRevoked(before time.Time) int
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	secureCookies              bool
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, secureCookies bool) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		secureCookies:              secureCookies,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(email string, name string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"email": email,
		"type":  TypeAccess,
		"exp":   expiresAt,
	}
	if name != "" {
		claims["name"] = name
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(email string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":   uuid.NewString(),
		"email": email,
		"exp":   expiresAt,
		"type":  TypeRefresh,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateRefreshToken(tokenString string) (string, error) {
	return j.validateTyped(tokenString, TypeRefresh)
}

// GenerateStreamToken issues a short-lived token for the event stream, which cannot send headers.
func (j *JWTService) GenerateStreamToken(email string) (token string, expiresIn int, err error) {
	expiresIn = int(streamTokenTTL.Seconds())
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"type":  TypeStream,
		"exp":   time.Now().Add(streamTokenTTL).Unix(),
	})
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresIn, nil
}

func (j *JWTService) ValidateStreamToken(tokenString string) (string, error) {
	return j.validateTyped(tokenString, TypeStream)
}

func (j *JWTService) validateTyped(tokenString string, want string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != want {
		return "", jwt.ErrInvalidJWT()
	}

	emailVal, ok := token.Get("email")
	if !ok {
		return "", ErrMissingEmailClaim
	}
	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", ErrMissingEmailClaim
	}
	return email, nil
}

func (j *JWTService) RefreshTokenCookieName() string {
	return refreshCookieName
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) PruneRevoked(before time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := before.Unix()
	pruned := 0
	for token, revokedAt := range j.revokedTokens {
		if revokedAt < cutoff {
			delete(j.revokedTokens, token)
			pruned++
		}
	}
	return pruned
}

// EmailFromContext reads the email claim of the verified token in ctx.
func EmailFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrMissingEmailClaim
	}
	return email, nil
}
