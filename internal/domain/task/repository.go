package task

import "context"

type TaskRepository interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, req AssignTaskRequest) (Task, error)
	Update(ctx context.Context, id string, patch Patch) (Task, error)
	Delete(ctx context.Context, id string) error
}
