package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	HRAPI        HRAPIConfig
	Auth         AuthConfig
	Report       ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Version        string
	FrontendURL    string
	AllowedOrigins []string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// HRAPIConfig describes the remote HR API that owns attendance, leave and user records.
type HRAPIConfig struct {
	BaseURL        string
	AttendancePath string
	LeavesPath     string
	UsersPath      string
	Timeout        time.Duration
	PageLimit      int
}

// AuthConfig holds the sign-in allow-list and the admin delete password hash.
type AuthConfig struct {
	AllowedEmails     []string
	AdminPasswordHash string
}

type ReportConfig struct {
	// HalfDayMode is "weighted" (a half-present day adds 0.5 to half days) or "count" (adds 1).
	HalfDayMode string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "4"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "1"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris-dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	frontendURL := getEnv("FRONTEND_URL", "http://localhost:3000")
	allowedOrigins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{frontendURL}
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		FrontendURL:    frontendURL,
		AllowedOrigins: allowedOrigins,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Remote HR API
	timeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}
	pageLimit, err := strconv.Atoi(getEnv("HR_API_PAGE_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_PAGE_LIMIT: %w", err)
	}

	config.HRAPI = HRAPIConfig{
		BaseURL:        strings.TrimRight(getEnv("HR_API_BASE_URL", ""), "/"),
		AttendancePath: getEnv("HR_API_ATTENDANCE_PATH", "/api/hr/attendance"),
		LeavesPath:     getEnv("HR_API_LEAVES_PATH", "/api/leaves"),
		UsersPath:      getEnv("HR_API_USERS_PATH", "/api/hr/users"),
		Timeout:        timeout,
		PageLimit:      pageLimit,
	}

	config.Auth = AuthConfig{
		AllowedEmails:     normalizeEmails(getEnvSlice("ALLOWED_EMAILS")),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	config.Report = ReportConfig{
		HalfDayMode: strings.ToLower(getEnv("REPORT_HALF_DAY_MODE", "weighted")),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.OAuth2Google.ClientID == "" {
		return fmt.Errorf("CLIENT_ID is required")
	}
	if c.OAuth2Google.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}
	if c.OAuth2Google.RedirectURL == "" {
		return fmt.Errorf("REDIRECT_URL is required")
	}
	if len(c.OAuth2Google.Scopes) == 0 {
		return fmt.Errorf("SCOPES is required")
	}
	if c.HRAPI.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.HRAPI.PageLimit <= 0 {
		return fmt.Errorf("HR_API_PAGE_LIMIT must be positive")
	}
	if len(c.Auth.AllowedEmails) == 0 {
		return fmt.Errorf("ALLOWED_EMAILS is required")
	}
	if c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Report.HalfDayMode != "weighted" && c.Report.HalfDayMode != "count" {
		return fmt.Errorf("REPORT_HALF_DAY_MODE must be one of: weighted, count")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func normalizeEmails(emails []string) []string {
	result := make([]string, 0, len(emails))
	for _, email := range emails {
		result = append(result, strings.ToLower(email))
	}
	return result
}
