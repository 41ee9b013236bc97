package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/mama/internal/adapters/lock"
	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the mama timer (default)" default:"1"`
	Focus     FocusCmd     `cmd:"focus" help:"Run one pomodoro without the full screen"`
	Onboard   OnboardCmd   `cmd:"onboard" help:"Choose your work duration and mom mode"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play a sound cue (cross-platform)" hidden:""`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the timer over SSH"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Inspect and fix recorded pomodoros"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage timer preferences and app settings"`
	Stats     StatsCmd     `cmd:"stats" help:"Show today's focus statistics"`
	Tags      TagsCmd      `cmd:"tags" help:"Manage tags (add, list, attach, detach, show)"`
	Tasks     TasksCmd     `cmd:"tasks" help:"Manage tasks (add, list, done, del)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings.
// The container is bound to the kong context so commands can ask for it.
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("MAMA_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("MAMA_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (play-sound) append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("MAMA_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("MAMA_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("MAMA_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM's logger has a target
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting mama TUI")

	fileLock, err := acquireLock()
	if err != nil {
		return err
	}
	defer fileLock.Release()

	ctx := context.Background()
	cli.Container.RecoverOrphans(ctx)

	if err := ensurePreferences(ctx, cli.Container); err != nil {
		if errors.Is(err, ui.ErrOnboardingAborted) {
			fmt.Println("Onboarding cancelled, see you next time.")
			return nil
		}
		return err
	}

	focus := cli.Container.NewFocusService()
	model, err := cli.Container.NewTimerModel(focus, errorClearDelay(cli.settings, r.ErrorClearDelay))
	if err != nil {
		return err
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	// A signal can stop the program without the quit key
	if err := focus.Close(ctx); err != nil {
		logging.Logger.Error("Failed to close focus session on exit", "error", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// errorClearDelay applies the error_clear_delay setting when the flag was
// left at its default
func errorClearDelay(settings *config.Settings, flagSeconds int) time.Duration {
	if flagSeconds == config.DefaultErrorClearDelay && settings != nil && settings.ErrorClearDelay != nil {
		flagSeconds = *settings.ErrorClearDelay
	}
	return time.Duration(flagSeconds) * time.Second
}

// acquireLock takes the single-instance lock under MAMA_HOME
func acquireLock() (*lock.FileLock, error) {
	fileLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, fmt.Errorf("another mama timer is already running (lock: %s)", config.GetLockPath())
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return fileLock, nil
}

// ensurePreferences runs onboarding when no preferences were stored yet
func ensurePreferences(ctx context.Context, container *Container) error {
	has, err := container.PreferencesService.HasPreferences(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	logging.Logger.Info("No preferences found, starting onboarding")
	_, err = ui.RunOnboarding(ctx, container.PreferencesService)
	return err
}
