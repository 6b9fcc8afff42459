package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskNotDeletable = errors.New("only tasks with 'Assigned' status can be deleted")
	ErrInvalidTaskID    = errors.New("invalid task id")
)
