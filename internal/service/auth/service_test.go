package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type storedToken struct {
	email   string
	revoked bool
}

// memoryTokens is an in-memory postgresql.JWTRepository.
type memoryTokens struct {
	mu     sync.Mutex
	tokens map[string]*storedToken
	err    error
}

func newMemoryTokens() *memoryTokens {
	return &memoryTokens{tokens: map[string]*storedToken{}}
}

func (m *memoryTokens) CreateRefreshToken(ctx context.Context, email string, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.tokens[token] = &storedToken{email: email}
	return nil
}

func (m *memoryTokens) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	t, ok := m.tokens[token]
	if !ok {
		return "", true, nil
	}
	return t.email, t.revoked, nil
}

func (m *memoryTokens) RevokeRefreshToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tokens[token]; ok {
		t.revoked = true
	}
	return nil
}

func (m *memoryTokens) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func newTestService(tokens *memoryTokens) *AuthServiceImpl {
	return &AuthServiceImpl{
		Service:       jwt.NewJWTService("test-secret", "1h", "168h", false),
		JWTRepository: tokens,
		allowed:       allowList([]string{"Admin@Example.com"}),
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func googleUser(email string, verified bool) auth.GoogleLoginRequest {
	return auth.GoogleLoginRequest{GoogleID: "g-1", Email: email, Name: "Admin", VerifiedEmail: verified}
}

func TestAuthService_IsEmailAllowed(t *testing.T) {
	svc := newTestService(newMemoryTokens())

	assert.True(t, svc.IsEmailAllowed("admin@example.com"))
	assert.True(t, svc.IsEmailAllowed(" ADMIN@example.COM "))
	assert.False(t, svc.IsEmailAllowed("intruder@example.com"))
}

func TestAuthService_LoginWithGoogle_Success(t *testing.T) {
	tokens := newMemoryTokens()
	svc := newTestService(tokens)

	resp, err := svc.LoginWithGoogle(context.Background(), googleUser("Admin@example.com", true), auth.SessionTrackingRequest{UserAgent: "test"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.RefreshTokenExpiresIn, resp.AccessTokenExpiresIn)
	require.Contains(t, tokens.tokens, resp.RefreshToken)
	assert.Equal(t, "admin@example.com", tokens.tokens[resp.RefreshToken].email)
}

func TestAuthService_LoginWithGoogle_NotAllowed(t *testing.T) {
	tokens := newMemoryTokens()
	svc := newTestService(tokens)

	_, err := svc.LoginWithGoogle(context.Background(), googleUser("intruder@example.com", true), auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrEmailNotAllowed)
	assert.Empty(t, tokens.tokens)
}

func TestAuthService_LoginWithGoogle_Unverified(t *testing.T) {
	svc := newTestService(newMemoryTokens())

	_, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", false), auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
}

func TestAuthService_LoginWithGoogle_StoreFailure(t *testing.T) {
	tokens := newMemoryTokens()
	tokens.err = errors.New("db down")
	svc := newTestService(tokens)

	_, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", true), auth.SessionTrackingRequest{})
	assert.ErrorContains(t, err, "db down")
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc := newTestService(newMemoryTokens())
	login, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", true), auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService(newMemoryTokens())
	login, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", true), auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc := newTestService(newMemoryTokens())

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	tokens := newMemoryTokens()
	svc := newTestService(tokens)
	login, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", true), auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))
	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_RemovedFromAllowList(t *testing.T) {
	svc := newTestService(newMemoryTokens())
	login, err := svc.LoginWithGoogle(context.Background(), googleUser("admin@example.com", true), auth.SessionTrackingRequest{})
	require.NoError(t, err)

	svc.allowed = allowList(nil)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrEmailNotAllowed)
}

func TestAdminVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	verifier := NewAdminVerifier(string(hash))

	assert.NoError(t, verifier.VerifyAdminPassword("letmein"))
	assert.ErrorIs(t, verifier.VerifyAdminPassword("LetMeIn"), auth.ErrInvalidAdminPassword)
	assert.ErrorIs(t, verifier.VerifyAdminPassword(""), auth.ErrInvalidAdminPassword)
}
