package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/dashboard"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

type dashboardRepositoryImpl struct {
	client *backend.Client
}

func NewDashboardRepository(client *backend.Client) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{client: client}
}

func (r *dashboardRepositoryImpl) GetStats(ctx context.Context) (dashboard.Stats, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	var stats dashboard.Stats
	if err := r.client.Get(ctx, sess, "/reports/stats", nil, &stats); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return stats, nil
}
