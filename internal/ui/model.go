package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/services"
	"github.com/renato0307/mama/internal/theme"
	"github.com/renato0307/mama/internal/timer"
)

type uiState int

const (
	stateTimer uiState = iota
	stateAddingTask
	statePickingTask
)

// Model is the interactive countdown screen
type Model struct {
	errorManager *ErrorManager
	focus        *services.FocusService
	height       int
	help         help.Model
	keys         KeyMap
	progress     progress.Model
	selectedTask *domain.Task
	snapshot     services.FocusSnapshot
	state        uiState
	stats        domain.DailyStats
	statsService *services.StatsService
	taskForm     *TaskForm
	taskPicker   *TaskPicker
	taskService  *services.TaskService
	width        int
}

// NewModel creates the countdown screen
func NewModel(
	errorClearDelay time.Duration,
	keysConfig config.KeyBindingsConfig,
	progressColors []string,
	focusService *services.FocusService,
	taskService *services.TaskService,
	statsService *services.StatsService,
) *Model {
	if len(progressColors) < 2 {
		progressColors = theme.DefaultProgressColors
	}

	return &Model{
		errorManager: NewErrorManager(errorClearDelay),
		focus:        focusService,
		help:         help.New(),
		keys:         NewKeyMap(keysConfig),
		progress:     progress.New(progress.WithGradient(progressColors[0], progressColors[1]), progress.WithoutPercentage()),
		snapshot:     focusService.Snapshot(),
		state:        stateTimer,
		statsService: statsService,
		taskService:  taskService,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(refreshCmd(), waitForFocusEvent(m.focus.Events()), m.loadStats())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages every state cares about
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(min(msg.Width-8, 60), 10)
	case refreshMsg:
		m.snapshot = m.focus.Snapshot()
		return m, refreshCmd()
	case focusEventMsg:
		return m, tea.Batch(m.handleFocusEvent(services.FocusEvent(msg)), waitForFocusEvent(m.focus.Events()))
	case statsLoadedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load stats", "error", msg.err)
			return m, nil
		}
		m.stats = msg.stats
		return m, nil
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	}

	switch m.state {
	case stateAddingTask:
		return m.updateAddingTask(msg)
	case statePickingTask:
		return m.updatePickingTask(msg)
	}
	return m.updateTimer(msg)
}

func (m *Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit), key.Matches(keyMsg, m.keys.Application.Quit):
		return m, m.quit()

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(keyMsg, m.keys.Timer.Start):
		return m, m.start()

	case key.Matches(keyMsg, m.keys.Timer.Pause):
		switch m.focus.Snapshot().State {
		case timer.StateRunning:
			m.focus.Pause()
		case timer.StatePaused:
			m.focus.Resume()
		}
		m.snapshot = m.focus.Snapshot()
		return m, nil

	case key.Matches(keyMsg, m.keys.Timer.Abandon):
		err := m.focus.Abandon(context.Background())
		m.snapshot = m.focus.Snapshot()
		if err != nil {
			return m, m.errorManager.SetError(fmt.Errorf("failed to abandon pomodoro: %w", err))
		}
		return m, m.loadStats()

	case key.Matches(keyMsg, m.keys.Timer.Retry):
		if err := m.focus.RetryPending(context.Background()); err != nil {
			return m, m.errorManager.SetError(err)
		}
		m.snapshot = m.focus.Snapshot()
		return m, m.loadStats()

	case key.Matches(keyMsg, m.keys.Tasks.Select):
		if m.isActive() {
			return m, nil
		}
		tasks, err := m.taskService.List(context.Background(), false)
		if err != nil {
			return m, m.errorManager.SetError(err)
		}
		m.taskPicker = NewTaskPicker(tasks, m.width, max(m.height-4, 10))
		m.state = statePickingTask
		return m, m.taskPicker.Init()

	case key.Matches(keyMsg, m.keys.Tasks.New):
		if m.isActive() {
			return m, nil
		}
		m.taskForm = NewTaskForm(m.taskService)
		m.state = stateAddingTask
		return m, m.taskForm.Init()
	}

	return m, nil
}

func (m *Model) updatePickingTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.taskPicker.Update(msg)
	m.taskPicker = updated.(*TaskPicker)

	if m.taskPicker.Completed {
		result := m.taskPicker.Result()
		m.state = stateTimer
		m.taskPicker = nil
		if !result.Cancelled && result.Task != nil {
			m.selectedTask = result.Task
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateAddingTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.taskForm.Update(msg)
	m.taskForm = updated.(*TaskForm)

	if m.taskForm.Completed {
		result := m.taskForm.Result()
		m.state = stateTimer
		m.taskForm = nil
		if result.Error != nil {
			return m, m.errorManager.SetError(fmt.Errorf("failed to add task: %w", result.Error))
		}
		if !result.Cancelled && result.Task != nil {
			m.selectedTask = result.Task
		}
		return m, nil
	}
	return m, cmd
}

func (m *Model) start() tea.Cmd {
	var taskID *string
	if m.selectedTask != nil {
		id := m.selectedTask.ID
		taskID = &id
	}

	_, err := m.focus.Start(context.Background(), services.StartFocusParams{TaskID: taskID})
	m.snapshot = m.focus.Snapshot()
	if err != nil {
		if errors.Is(err, services.ErrFocusInProgress) {
			return nil
		}
		return m.errorManager.SetError(fmt.Errorf("failed to start pomodoro: %w", err))
	}
	return nil
}

// quit abandons an active pomodoro and makes a last attempt at unsaved
// completions so no session is left running
func (m *Model) quit() tea.Cmd {
	if err := m.focus.Close(context.Background()); err != nil {
		logging.Logger.Error("Failed to close focus session on quit", "error", err)
	}
	return tea.Quit
}

func (m *Model) handleFocusEvent(event services.FocusEvent) tea.Cmd {
	m.snapshot = m.focus.Snapshot()

	switch event.Type {
	case services.FocusEventCompleted:
		m.statsService.Invalidate()
		if m.selectedTask != nil {
			m.selectedTask.CompletedPomodoros++
		}
		return m.loadStats()
	case services.FocusEventCompletionFailed:
		return m.errorManager.SetError(fmt.Errorf("pomodoro finished but was not saved (press %s to retry): %w",
			m.keys.Timer.Retry.Help().Key, event.Err))
	}
	return nil
}

func (m *Model) loadStats() tea.Cmd {
	stats := m.statsService
	return func() tea.Msg {
		s, err := stats.Today(context.Background())
		return statsLoadedMsg{err: err, stats: s}
	}
}

func (m *Model) isActive() bool {
	state := m.snapshot.State
	return m.snapshot.SessionID != "" && (state == timer.StateRunning || state == timer.StatePaused)
}

func (m *Model) View() string {
	switch m.state {
	case stateAddingTask:
		return m.taskForm.View()
	case statePickingTask:
		return m.taskPicker.View()
	}

	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("mama"))
	b.WriteString("\n")
	b.WriteString(m.renderTask())
	b.WriteString("\n")

	snap := m.snapshot
	b.WriteString(theme.ClockStyle.Render(FormatClock(snap.RemainingSeconds)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(snap.Progress))
	b.WriteString("\n\n")
	b.WriteString(m.renderState())
	b.WriteString("\n\n")
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("Today: %d pomodoros · %s focused · %d cancelled · streak %d days",
		m.stats.CompletedSessions,
		FormatMinutes(m.stats.FocusedSeconds),
		m.stats.CancelledSessions,
		m.stats.StreakDays)))

	if errLine := m.errorManager.Render(m.width); errLine != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorStyle.Render(errLine))
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m *Model) renderTask() string {
	if m.selectedTask == nil {
		return theme.MutedStyle.Render(fmt.Sprintf("No task selected (press %s to pick one)", m.keys.Tasks.Select.Help().Key))
	}

	line := theme.TaskTitleStyle.Render(m.selectedTask.Title) +
		theme.MutedStyle.Render(fmt.Sprintf("  %d/%d", m.selectedTask.CompletedPomodoros, m.selectedTask.EstimatedPomodoros))
	for _, tag := range m.selectedTask.Tags {
		line += " " + theme.TagStyle(tag.Color).Render("#"+tag.Name)
	}
	return line
}

func (m *Model) renderState() string {
	snap := m.snapshot
	label := strings.ToUpper(string(snap.State))
	line := theme.StateStyle(string(snap.State)).Render(label)

	switch {
	case snap.PendingCount > 1:
		line += theme.ErrorStyle.Render(fmt.Sprintf(" %d completions not saved", snap.PendingCount))
	case snap.PendingCompletion:
		line += theme.ErrorStyle.Render(" completion not saved")
	case snap.State == timer.StateIdle:
		line += theme.HintLabelStyle.Render(" press ") +
			theme.HintKeyStyle.Render(m.keys.Timer.Start.Help().Key) +
			theme.HintLabelStyle.Render(" to start focusing")
	case snap.HalfwayFired && snap.State != timer.StateCompleted:
		line += theme.MutedStyle.Render(" halfway there")
	}
	return line
}
