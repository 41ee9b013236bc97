package services

import (
	"context"
	"fmt"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// PreferencesService manages the stored timer preferences
type PreferencesService struct {
	file ports.PreferencesFile
	repo ports.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(repo ports.PreferencesRepository, file ports.PreferencesFile) *PreferencesService {
	return &PreferencesService{
		file: file,
		repo: repo,
	}
}

// Load returns the stored preferences, or the defaults when none exist
func (s *PreferencesService) Load(ctx context.Context) (domain.Preferences, error) {
	prefs, err := s.repo.LoadPreferences(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return *prefs, nil
}

// HasPreferences reports whether onboarding already stored preferences
func (s *PreferencesService) HasPreferences(ctx context.Context) (bool, error) {
	prefs, err := s.repo.LoadPreferences(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs != nil, nil
}

// CreateDefaults stores the default preferences with the work duration
// (in seconds) and mom mode chosen during onboarding
func (s *PreferencesService) CreateDefaults(ctx context.Context, workDuration int, mode domain.MomMode) (domain.Preferences, error) {
	if workDuration <= 0 {
		return domain.Preferences{}, fmt.Errorf("failed to create preferences: work %w", domain.ErrInvalidDuration)
	}
	if _, err := domain.ParseMomMode(string(mode)); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to create preferences: %w", err)
	}

	prefs := domain.DefaultPreferences()
	prefs.MomMode = mode
	prefs.WorkDuration = workDuration

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		logging.Logger.Error("Failed to save default preferences", "error", err)
		return domain.Preferences{}, fmt.Errorf("failed to create preferences: %w", err)
	}

	logging.Logger.Info("Created preferences", "work_duration", workDuration, "mom_mode", mode)
	return prefs, nil
}

// Update validates and stores a single preference
func (s *PreferencesService) Update(ctx context.Context, key, value string) (domain.Preferences, error) {
	prefs, err := s.Load(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}

	if err := prefs.Set(key, value); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to update %s: %w", key, err)
	}

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		logging.Logger.Error("Failed to save preference", "key", key, "error", err)
		return domain.Preferences{}, fmt.Errorf("failed to update %s: %w", key, err)
	}

	logging.Logger.Info("Updated preference", "key", key, "value", value)
	return prefs, nil
}

// Export writes the current preferences to a file
func (s *PreferencesService) Export(ctx context.Context, path string) error {
	prefs, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := s.file.Write(config.ExpandPath(path), prefs); err != nil {
		return fmt.Errorf("failed to export preferences: %w", err)
	}
	return nil
}

// Import replaces the stored preferences with the ones read from a file
func (s *PreferencesService) Import(ctx context.Context, path string) (domain.Preferences, error) {
	prefs, err := s.file.Read(config.ExpandPath(path))
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to import preferences: %w", err)
	}

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to import preferences: %w", err)
	}

	logging.Logger.Info("Imported preferences", "path", path)
	return prefs, nil
}
