package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
)

// TasksCmd manages tasks
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Add a new task"`
	Del  TasksDelCmd  `cmd:"del" help:"Delete a task"`
	Done TasksDoneCmd `cmd:"done" help:"Mark a task as completed"`
	List TasksListCmd `cmd:"list" help:"List tasks" default:"1"`
}

// TasksAddCmd adds a task
type TasksAddCmd struct {
	Estimate int      `help:"Estimated number of pomodoros" short:"e" default:"1"`
	Tags     []string `help:"Tags to attach (must exist)" short:"t"`
	Title    string   `arg:"" help:"Task title"`
}

// Run executes the add command
func (t *TasksAddCmd) Run(container *Container) error {
	ctx := context.Background()

	task, err := container.TaskService.Create(ctx, t.Title, t.Estimate)
	if err != nil {
		return err
	}

	for _, tag := range t.Tags {
		if err := container.TagService.AddToTask(ctx, task.ID, tag); err != nil {
			return err
		}
	}

	fmt.Printf("Task '%s' added (id: %s)\n", task.Title, task.ID)
	return nil
}

// TasksListCmd lists tasks
type TasksListCmd struct {
	All    bool   `help:"Include completed tasks" short:"a"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// taskJSON is the JSON shape of a task
type taskJSON struct {
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	CompletedPomodoros int        `json:"completed_pomodoros"`
	CreatedAt          time.Time  `json:"created_at"`
	EstimatedPomodoros int        `json:"estimated_pomodoros"`
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	Tags               []string   `json:"tags"`
	Title              string     `json:"title"`
}

// Run executes the list command
func (t *TasksListCmd) Run(container *Container) error {
	tasks, err := container.TaskService.List(context.Background(), t.All)
	if err != nil {
		return err
	}

	if t.Format == "json" {
		out := make([]taskJSON, len(tasks))
		for i, task := range tasks {
			out[i] = taskJSON{
				CompletedAt:        task.CompletedAt,
				CompletedPomodoros: task.CompletedPomodoros,
				CreatedAt:          task.CreatedAt,
				EstimatedPomodoros: task.EstimatedPomodoros,
				ID:                 task.ID,
				Status:             string(task.Status),
				Tags:               tagNames(task.Tags),
				Title:              task.Title,
			}
		}
		return printJSON(out)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'mama tasks add <title>'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPOMODOROS\tSTATUS\tTAGS")
	for _, task := range tasks {
		status := string(task.Status)
		if task.IsDone() {
			status = "✓ " + status
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n",
			task.ID,
			task.Title,
			task.CompletedPomodoros,
			task.EstimatedPomodoros,
			status,
			strings.Join(tagNames(task.Tags), ", "))
	}
	return w.Flush()
}

// TasksDoneCmd completes a task
type TasksDoneCmd struct {
	ID string `arg:"" help:"ID of the task to complete"`
}

// Run executes the done command
func (t *TasksDoneCmd) Run(container *Container) error {
	if err := container.TaskService.Complete(context.Background(), t.ID); err != nil {
		return err
	}
	fmt.Printf("Task '%s' completed\n", t.ID)
	return nil
}

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	ID    string `arg:"" help:"ID of the task to delete"`
}

// Run executes the del command
func (t *TasksDelCmd) Run(container *Container) error {
	ctx := context.Background()

	task, err := container.TaskService.Get(ctx, t.ID)
	if err != nil {
		return err
	}

	if !t.Force && !t.confirmDeletion(task) {
		return nil
	}

	if err := container.TaskService.Delete(ctx, t.ID); err != nil {
		return err
	}
	fmt.Printf("Task '%s' deleted\n", task.Title)
	return nil
}

func (t *TasksDelCmd) confirmDeletion(task *domain.Task) bool {
	fmt.Printf("WARNING: This will delete task '%s'\n", task.Title)
	fmt.Println("  - Its pomodoros stay recorded without a task")
	fmt.Print("\nContinue? (y/N): ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled task deletion", "task_id", task.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}

func tagNames(tags []domain.Tag) []string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}
