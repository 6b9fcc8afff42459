package task

import "context"

type TaskService interface {
	List(ctx context.Context) ([]TaskResponse, error)
	Assign(ctx context.Context, req AssignTaskRequest) (TaskResponse, error)
	UpdateDetails(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (TaskResponse, error)

	// Delete removes a task that is still in Assigned status
	Delete(ctx context.Context, id string) error
}
