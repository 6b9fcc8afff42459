package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

const tasksPath = "/tasks"

type taskRepositoryImpl struct {
	client *backend.Client
}

func NewTaskRepository(client *backend.Client) task.TaskRepository {
	return &taskRepositoryImpl{client: client}
}

// List returns tasks newest first, as the backend sorts them.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var list []task.Task
	if err := r.client.Get(ctx, sess, tasksPath, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return list, nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, req task.AssignTaskRequest) (task.Task, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return task.Task{}, err
	}

	var created task.Task
	if err := r.client.Post(ctx, sess, tasksPath, req, &created); err != nil {
		return task.Task{}, fmt.Errorf("failed to assign task: %w", err)
	}
	return created, nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, id string, patch task.Patch) (task.Task, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return task.Task{}, err
	}

	var updated task.Task
	if err := r.client.Patch(ctx, sess, itemPath(tasksPath, id), patch, &updated); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task %s: %w", id, mapNotFound(err, task.ErrTaskNotFound, id))
	}
	return updated, nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	sess, err := GetSession(ctx)
	if err != nil {
		return err
	}

	if err := r.client.Delete(ctx, sess, itemPath(tasksPath, id), nil); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, mapNotFound(err, task.ErrTaskNotFound, id))
	}
	return nil
}
