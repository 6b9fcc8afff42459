package dashboard

import "context"

type DashboardRepository interface {
	GetStats(ctx context.Context) (Stats, error)
}
