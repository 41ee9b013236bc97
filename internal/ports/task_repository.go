package ports

import (
	"context"
	"time"

	"github.com/renato0307/mama/internal/domain"
)

// TaskReader reads tasks
type TaskReader interface {
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
}

// TaskWriter creates and updates tasks
type TaskWriter interface {
	AddTask(ctx context.Context, task domain.Task) error
	CompleteTask(ctx context.Context, id string, completedAt time.Time) error
	DeleteTask(ctx context.Context, id string) error
	IncrementPomodoro(ctx context.Context, id string) error
}

// TaskRepository is the composite interface
type TaskRepository interface {
	TaskReader
	TaskWriter
}
