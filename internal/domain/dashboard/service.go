package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetOverview returns task counters and the latest tasks, fetched in parallel
	GetOverview(ctx context.Context) (OverviewResponse, error)
}
