package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/mama/internal/domain"
)

// taskItem adapts a task to the bubbles list
type taskItem struct {
	task domain.Task
}

func (i taskItem) Title() string { return i.task.Title }

func (i taskItem) Description() string {
	desc := fmt.Sprintf("%d/%d pomodoros", i.task.CompletedPomodoros, i.task.EstimatedPomodoros)
	if len(i.task.Tags) > 0 {
		names := make([]string, len(i.task.Tags))
		for j, t := range i.task.Tags {
			names[j] = "#" + t.Name
		}
		desc += "  " + strings.Join(names, " ")
	}
	return desc
}

func (i taskItem) FilterValue() string { return i.task.Title }

// TaskPickerResult contains the outcome of the picker
type TaskPickerResult struct {
	Cancelled bool
	Task      *domain.Task
}

// TaskPicker lets the user choose the task the next pomodoro counts for
type TaskPicker struct {
	Completed bool
	list      list.Model
	result    TaskPickerResult
}

// NewTaskPicker creates a picker over tasks
func NewTaskPicker(tasks []domain.Task, width, height int) *TaskPicker {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{task: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Pick a task"
	l.SetShowStatusBar(false)

	return &TaskPicker{list: l}
}

func (p *TaskPicker) Init() tea.Cmd {
	return nil
}

func (p *TaskPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, msg.Height-4)
	case tea.KeyMsg:
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc", "ctrl+c":
			p.result.Cancelled = true
			p.Completed = true
			return p, nil
		case "enter":
			if item, ok := p.list.SelectedItem().(taskItem); ok {
				task := item.task
				p.result.Task = &task
			}
			p.Completed = true
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *TaskPicker) View() string {
	return p.list.View()
}

// Result returns the picker result
func (p *TaskPicker) Result() TaskPickerResult {
	return p.result
}
