package cmd

import (
	"context"
	"fmt"
	"time"

	adapterprefs "github.com/renato0307/mama/internal/adapters/prefsfile"
	adaptersound "github.com/renato0307/mama/internal/adapters/sound"
	adapterstorage "github.com/renato0307/mama/internal/adapters/storage"
	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
	"github.com/renato0307/mama/internal/services"
	"github.com/renato0307/mama/internal/timer"
	"github.com/renato0307/mama/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	LedgerService      *services.SessionLedger
	PreferencesService *services.PreferencesService
	StatsService       *services.StatsService
	TagService         *services.TagService
	TaskService        *services.TaskService

	// Adapters
	SoundPlayer ports.SoundPlayer

	settings *config.Settings

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	// Create adapters
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	var soundPlayer ports.SoundPlayer = adaptersound.Silent{}
	if settings.SoundOn() {
		soundPlayer = adaptersound.NewPlayer()
	}

	clock := timer.SystemClock{}

	// Create services
	ledgerService := services.NewSessionLedger(repo, repo, clock)
	preferencesService := services.NewPreferencesService(repo, adapterprefs.NewYAMLFile())
	statsService := services.NewStatsService(repo, clock)
	taskService := services.NewTaskService(repo, clock)
	tagService := services.NewTagService(repo, repo)

	return &Container{
		LedgerService:      ledgerService,
		PreferencesService: preferencesService,
		SoundPlayer:        soundPlayer,
		StatsService:       statsService,
		TagService:         tagService,
		TaskService:        taskService,
		repo:               repo,
		settings:           settings,
	}, nil
}

// NewFocusService creates a focus service with its own countdown engine.
// Every screen gets one, so two SSH users never share a countdown.
func (c *Container) NewFocusService() *services.FocusService {
	engine := timer.New(timer.Config{})
	return services.NewFocusService(
		engine,
		c.LedgerService,
		c.PreferencesService,
		c.repo,
		c.SoundPlayer,
		c.settings.SoundOn(),
	)
}

// NewTimerModel creates the countdown screen around focus
func (c *Container) NewTimerModel(focus *services.FocusService, errorClearDelay time.Duration) (*ui.Model, error) {
	keys, err := keyBindings(c.settings)
	if err != nil {
		return nil, err
	}

	return ui.NewModel(
		errorClearDelay,
		keys,
		c.settings.ProgressColors,
		focus,
		c.TaskService,
		c.StatsService,
	), nil
}

// RecoverOrphans cancels sessions left RUNNING by a previous process when
// the recover_orphans setting allows it
func (c *Container) RecoverOrphans(ctx context.Context) {
	if !c.settings.RecoverOrphansOn() {
		logging.Logger.Debug("Orphan recovery disabled by settings")
		return
	}

	if _, err := c.LedgerService.RecoverOrphans(ctx); err != nil {
		logging.Logger.Warn("Failed to recover orphaned sessions", "error", err)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

// keyBindings validates the custom key bindings from settings.json
func keyBindings(settings *config.Settings) (config.KeyBindingsConfig, error) {
	if settings == nil || settings.Keys == nil {
		return nil, nil
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return settings.Keys, nil
}
