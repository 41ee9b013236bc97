package ports

import (
	"context"

	"github.com/renato0307/mama/internal/domain"
)

// PreferencesRepository persists the timer preferences row
type PreferencesRepository interface {
	// LoadPreferences returns nil without error when nothing was saved yet
	LoadPreferences(ctx context.Context) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
}

// PreferencesFile reads and writes preferences in a portable file format
type PreferencesFile interface {
	Read(path string) (domain.Preferences, error)
	Write(path string, prefs domain.Preferences) error
}
