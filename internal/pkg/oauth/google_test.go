package oauth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGenerateState_Unique(t *testing.T) {
	svc := NewGoogleService("id", "secret", "http://localhost/callback", []string{"email"})

	a, err := svc.GenerateState()
	require.NoError(t, err)
	b, err := svc.GenerateState()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, url.QueryEscape(a))
}

func TestRedirectURL_CarriesState(t *testing.T) {
	svc := NewGoogleService("client-id", "secret", "http://localhost/callback", []string{"openid", "email"})

	raw := svc.RedirectURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost/callback", q.Get("redirect_uri"))
	assert.Equal(t, "openid email", q.Get("scope"))
}

func TestUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":"g-1","email":"hr@example.com","name":"HR","verified_email":true}`)
	}))
	defer srv.Close()

	svc := &GoogleServiceImpl{config: &oauth2.Config{}, userInfoURL: srv.URL}
	info, err := svc.UserInfo(context.Background(), &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", info.Email)
	assert.Equal(t, "HR", info.Name)
	assert.True(t, info.VerifiedEmail)
}

func TestUserInfo_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := &GoogleServiceImpl{config: &oauth2.Config{}, userInfoURL: srv.URL}
	_, err := svc.UserInfo(context.Background(), &oauth2.Token{AccessToken: "tok"})
	assert.Error(t, err)
}
