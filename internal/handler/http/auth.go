package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
)

const stateCookieName = "state"

type AuthHandler interface {
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
	secureCookies bool
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string, secureCookies bool) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
		secureCookies: secureCookies,
	}
}

func (a *AuthHandlerImpl) callbackURL(params url.Values) string {
	return fmt.Sprintf("%s/auth/callback/google?%s", a.frontendURL, params.Encode())
}

func (a *AuthHandlerImpl) stateCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     stateCookieName,
		Value:    value,
		Path:     "/api/v1/auth/oauth/callback/google",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state, err := a.googleService.GenerateState()
	if err != nil {
		slog.Error("Generate oauth state error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.stateCookie(state, time.Now().Add(5*time.Minute)))
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(code string) {
		http.Redirect(w, r, a.callbackURL(url.Values{"error": {code}}), http.StatusTemporaryRedirect)
	}

	// The state is single use.
	http.SetCookie(w, a.stateCookie("", time.Unix(0, 0)))

	query := r.URL.Query()
	if errorValue := query.Get("error"); errorValue != "" {
		slog.Warn("Google consent was not granted", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	if query.Get("state") != stateCookie.Value {
		slog.Error("State mismatch", "error", auth.ErrStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := query.Get("code")
	if code == "" {
		slog.Error("Authorization code is empty")
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange code", "error", err)
		redirectWithError("token_exchange_failed")
		return
	}

	info, err := a.googleService.UserInfo(r.Context(), token)
	if err != nil {
		slog.Error("Failed to fetch user info", "error", err)
		redirectWithError("user_info_failed")
		return
	}

	sessionTrackReq := auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), auth.GoogleLoginRequest{
		GoogleID:      info.GoogleID,
		Email:         info.Email,
		Name:          info.Name,
		VerifiedEmail: info.VerifiedEmail,
	}, sessionTrackReq)
	if err != nil {
		slog.Error("Failed to login with Google", "error", err, "email", info.Email)
		switch {
		case errors.Is(err, auth.ErrEmailNotAllowed):
			redirectWithError("email_not_allowed")
		case errors.Is(err, auth.ErrEmailNotVerified):
			redirectWithError("email_not_verified")
		default:
			redirectWithError("login_failed")
		}
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	slog.Info("User logged in via Google", "email", info.Email)

	http.Redirect(w, r, a.callbackURL(url.Values{
		"access_token": {tokenResponse.AccessToken},
		"expires_in":   {fmt.Sprint(tokenResponse.AccessTokenExpiresIn)},
	}), http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	cookie, err := r.Cookie(a.jwtService.RefreshTokenCookieName())
	if err == nil && cookie.Value != "" {
		refreshTokenReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
		slog.Error("Refresh token decode error", "error", err)
		response.HandleError(w, auth.ErrRefreshTokenCookieNotFound)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq)
	if err != nil {
		slog.Error("Refresh token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(a.jwtService.RefreshTokenCookieName())
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrRefreshTokenCookieNotFound)
		return
	}

	if err := a.authService.Logout(r.Context(), cookie.Value); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if accessToken := jwtauth.TokenFromHeader(r); accessToken != "" {
		a.jwtService.RevokeToken(accessToken)
	}

	http.SetCookie(w, a.jwtService.ClearRefreshTokenCookie())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	me := auth.MeResponse{ExpiresAt: token.Expiration().Unix()}
	me.Email, _ = claims["email"].(string)
	me.Name, _ = claims["name"].(string)

	response.Success(w, me)
}
