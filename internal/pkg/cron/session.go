package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	sessionCleanupInterval = 1 * time.Hour
	sessionCleanupTimeout  = 1 * time.Minute
)

// ExpiredTokenStore deletes persisted refresh tokens.
type ExpiredTokenStore interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// RevocationList forgets in-memory revoked access tokens.
type RevocationList interface {
	PruneRevoked(before time.Time) int
}

// SessionJobs contains session housekeeping jobs
type SessionJobs struct {
	tokens    ExpiredTokenStore
	revoked   RevocationList
	accessTTL time.Duration
	now       func() time.Time
}

// NewSessionJobs creates session cron jobs. Revoked access tokens are kept for accessTTL,
// after which they have expired on their own.
func NewSessionJobs(tokens ExpiredTokenStore, revoked RevocationList, accessTTL time.Duration) *SessionJobs {
	return &SessionJobs{
		tokens:    tokens,
		revoked:   revoked,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// RegisterJobs registers all session-related cron jobs
func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Add(Job{
		Name:     "prune_expired_sessions",
		Interval: sessionCleanupInterval,
		Timeout:  sessionCleanupTimeout,
		Fn:       j.PruneExpiredSessions,
	})
}

// PruneExpiredSessions deletes expired or revoked refresh tokens and forgets stale access-token revocations.
func (j *SessionJobs) PruneExpiredSessions(ctx context.Context) error {
	now := j.now()

	deleted, err := j.tokens.DeleteExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	pruned := j.revoked.PruneRevoked(now.Add(-j.accessTTL))

	if deleted > 0 || pruned > 0 {
		slog.Info("Pruned expired sessions", "refresh_tokens", deleted, "revoked_access_tokens", pruned)
	}
	return nil
}
