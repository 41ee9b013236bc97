package domain

import "time"

// TaskStatus represents the progress of a task
type TaskStatus string

const (
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskTodo       TaskStatus = "TODO"
)

// Task is a unit of work that focus sessions can be attributed to
type Task struct {
	CompletedAt        *time.Time
	CompletedPomodoros int
	CreatedAt          time.Time
	EstimatedPomodoros int
	ID                 string
	SortOrder          int
	Status             TaskStatus
	Tags               []Tag
	Title              string
}

// IsDone reports whether the task has been completed
func (t Task) IsDone() bool {
	return t.Status == TaskCompleted
}
