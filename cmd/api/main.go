package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	appHTTP "github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
	hrapiRepo "github.com/cmlabs-hris/hris-dashboard-go/internal/repository/hrapi"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/attendance"
	auditService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/audit"
	serviceAuth "github.com/cmlabs-hris/hris-dashboard-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.NewPostgreSQLDB(connectCtx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	cancelConnect()
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accessTTL, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		slog.Error("Invalid JWT_ACCESS_EXPIRATION_TIME", "error", err)
		os.Exit(1)
	}

	// Upstream HR API
	hrClient := hrapi.NewClient(cfg.HRAPI.BaseURL, cfg.HRAPI.Timeout, cfg.HRAPI.PageLimit)
	attendanceRepo := hrapiRepo.NewAttendanceRepository(hrClient, cfg.HRAPI.AttendancePath)
	leaveRepo := hrapiRepo.NewLeaveRepository(hrClient, cfg.HRAPI.LeavesPath)
	employeeRepo := hrapiRepo.NewEmployeeRepository(hrClient, cfg.HRAPI.UsersPath)

	// Local state
	JWTRepository := postgresql.NewJWTRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	secureCookies := cfg.App.Env == "production"
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, secureCookies)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	halfDayMode := report.HalfDayMode(cfg.Report.HalfDayMode)
	hub := sse.NewHub()
	auditSvc := auditService.NewChangeFeed(auditService.NewAuditService(auditRepo), hub)
	adminVerifier := serviceAuth.NewAdminVerifier(cfg.Auth.AdminPasswordHash)
	authService := serviceAuth.NewAuthService(db, JWTService, JWTRepository, cfg.Auth.AllowedEmails)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, adminVerifier, auditSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, adminVerifier, auditSvc)
	loader := snapshot.NewLoader(attendanceRepo, leaveRepo, employeeRepo)
	reportSvc := reportService.NewReportService(loader, halfDayMode)
	dashboardSvc := dashboardService.NewDashboardService(loader)
	employeeSvc := employeeService.NewEmployeeService(loader, halfDayMode)

	router := appHTTP.NewRouter(cfg.App, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL, secureCookies),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
		Events:     appHTTP.NewEventsHandler(JWTService, hub),
	})

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(JWTRepository, JWTService, accessTTL).RegisterJobs(scheduler)
	scheduler.Start()

	server := newHTTPServer(fmt.Sprintf(":%d", cfg.App.Port), router)

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

// newHTTPServer ends request contexts once Shutdown starts, so event streams close
// while ordinary requests keep running until they drain.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelBase)
	return server
}
