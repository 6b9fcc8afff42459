package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

const RevokedTokenPruneInterval = 10 * time.Minute

// SessionJobs keeps the revoked-token registry from growing without bound
type SessionJobs struct {
	registry *session.Registry
}

func NewSessionJobs(registry *session.Registry) *SessionJobs {
	return &SessionJobs{registry: registry}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune_revoked_tokens", RevokedTokenPruneInterval, j.PruneRevokedTokens)
}

func (j *SessionJobs) PruneRevokedTokens(ctx context.Context) error {
	if n := j.registry.Prune(); n > 0 {
		slog.Info("Cron: pruned revoked tokens", "count", n, "remaining", j.registry.Len())
	}
	return nil
}
