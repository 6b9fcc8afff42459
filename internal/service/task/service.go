package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

type TaskServiceImpl struct {
	taskRepo task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	list, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return task.ToResponses(list), nil
}

// Assign implements task.TaskService.
func (s *TaskServiceImpl) Assign(ctx context.Context, req task.AssignTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return task.TaskResponse{}, err
	}
	slog.Info("Task assigned", "task_id", created.ID, "employee_id", req.EmployeeID, "category", req.Category)
	return task.ToResponse(created), nil
}

// UpdateDetails implements task.TaskService.
func (s *TaskServiceImpl) UpdateDetails(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.taskRepo.Update(ctx, req.ID, req.Patch())
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(updated), nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	status := req.Status
	updated, err := s.taskRepo.Update(ctx, req.ID, task.Patch{Status: &status})
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(updated), nil
}

// Delete implements task.TaskService.
// Tasks can only be deleted before work on them has started.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidObjectID(id) {
		return task.ErrInvalidTaskID
	}

	list, err := s.taskRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, t := range list {
		if t.ID != id {
			continue
		}
		if !t.Deletable() {
			return fmt.Errorf("%w: task %s is %s", task.ErrTaskNotDeletable, id, t.Status)
		}
		return s.taskRepo.Delete(ctx, id)
	}
	return fmt.Errorf("%w: %s", task.ErrTaskNotFound, id)
}
