package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

type reportRepositoryImpl struct {
	client *backend.Client
}

func NewReportRepository(client *backend.Client) report.ReportRepository {
	return &reportRepositoryImpl{client: client}
}

// ListTaskReport implements report.ReportRepository.
func (r *reportRepositoryImpl) ListTaskReport(ctx context.Context) ([]task.Task, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := r.client.Get(ctx, sess, "/reports/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to fetch task report: %w", err)
	}
	return tasks, nil
}
