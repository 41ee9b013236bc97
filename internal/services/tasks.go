package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// ErrEmptyTitle is returned when a task is created without a title
var ErrEmptyTitle = errors.New("task title cannot be empty")

// TaskService manages the task list sessions are attributed to
type TaskService struct {
	clock ports.Clock
	newID func() string
	repo  ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo ports.TaskRepository, clock ports.Clock) *TaskService {
	return &TaskService{
		clock: clock,
		newID: uuid.NewString,
		repo:  repo,
	}
}

// Create adds a TODO task at the end of the list
func (s *TaskService) Create(ctx context.Context, title string, estimatedPomodoros int) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if estimatedPomodoros < 0 {
		estimatedPomodoros = 0
	}

	task := domain.Task{
		CreatedAt:          s.clock.Now().UTC(),
		EstimatedPomodoros: estimatedPomodoros,
		ID:                 s.newID(),
		Status:             domain.TaskTodo,
		Title:              title,
	}

	if err := s.repo.AddTask(ctx, task); err != nil {
		logging.Logger.Error("Failed to add task", "title", title, "error", err)
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	logging.Logger.Info("Task added", "task_id", task.ID, "title", title)
	return &task, nil
}

// List returns tasks in list order, optionally including completed ones
func (s *TaskService) List(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns one task with its tags
func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return task, nil
}

// IncrementPomodoro credits one completed pomodoro to a task
func (s *TaskService) IncrementPomodoro(ctx context.Context, id string) error {
	if err := s.repo.IncrementPomodoro(ctx, id); err != nil {
		return fmt.Errorf("failed to increment pomodoro for task %s: %w", id, err)
	}
	return nil
}

// Complete marks a task COMPLETED
func (s *TaskService) Complete(ctx context.Context, id string) error {
	if err := s.repo.CompleteTask(ctx, id, s.clock.Now().UTC()); err != nil {
		logging.Logger.Error("Failed to complete task", "task_id", id, "error", err)
		return fmt.Errorf("failed to complete task %s: %w", id, err)
	}
	logging.Logger.Info("Task completed", "task_id", id)
	return nil
}

// Delete removes a task. Its sessions stay in the ledger without a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		logging.Logger.Error("Failed to delete task", "task_id", id, "error", err)
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	logging.Logger.Info("Task deleted", "task_id", id)
	return nil
}
