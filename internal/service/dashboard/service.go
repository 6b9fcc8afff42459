package dashboard

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/dashboard"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	taskRepo      task.TaskRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, taskRepo task.TaskRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		taskRepo:      taskRepo,
	}
}

// GetOverview fetches counters and the task list in parallel
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.OverviewResponse, error) {
	var (
		stats dashboard.Stats
		tasks []task.Task
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.dashboardRepo.GetStats(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("failed to load dashboard overview: %w", err)
	}

	// The backend lists tasks newest first.
	if len(tasks) > dashboard.RecentTaskLimit {
		tasks = tasks[:dashboard.RecentTaskLimit]
	}

	return dashboard.OverviewResponse{
		Stats: dashboard.StatsResponse{
			Total:           stats.Total,
			Completed:       stats.Completed,
			Pending:         stats.Pending,
			ActiveEmployees: stats.ActiveEmployees,
		},
		RecentTasks: task.ToResponses(tasks),
	}, nil
}
