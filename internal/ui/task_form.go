package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/services"
)

// TaskFormResult contains the result of the quick task form
type TaskFormResult struct {
	Cancelled bool
	Error     error
	Task      *domain.Task
}

// TaskForm is a Bubble Tea component for adding a task without leaving the timer
type TaskForm struct {
	Completed   bool
	estimate    int
	form        *huh.Form
	result      TaskFormResult
	taskService *services.TaskService
	title       string
}

// NewTaskForm creates a new quick task form
func NewTaskForm(taskService *services.TaskService) *TaskForm {
	tf := &TaskForm{
		estimate:    1,
		taskService: taskService,
	}

	estimates := make([]huh.Option[int], 0, 8)
	for n := 1; n <= 8; n++ {
		estimates = append(estimates, huh.NewOption(fmt.Sprintf("%d", n), n))
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What are you focusing on?").
				Value(&tf.title).
				CharLimit(200).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return services.ErrEmptyTitle
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Estimated pomodoros").
				Options(estimates...).
				Value(&tf.estimate),
		),
	)

	return tf
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle Escape or Ctrl+C to cancel
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		task, err := tf.taskService.Create(context.Background(), tf.title, tf.estimate)
		if err != nil {
			logging.Logger.Error("Failed to add task from form", "error", err)
			tf.result.Error = err
		}
		tf.result.Task = task
		return tf, nil
	}

	return tf, cmd
}

func (tf *TaskForm) View() string {
	if tf.form != nil {
		return tf.form.View()
	}
	return ""
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}
