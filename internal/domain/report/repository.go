package report

import (
	"context"

	"github.com/adspro/dashboard-backend-go/internal/domain/task"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// ListTaskReport returns every task assignment with its employee
	ListTaskReport(ctx context.Context) ([]task.Task, error)
}
