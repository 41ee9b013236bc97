package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/mama/internal/domain"
)

// preferencesRowID is the key of the single preferences row
const preferencesRowID = "default"

// LoadPreferences implements PreferencesRepository.LoadPreferences
func (r *SQLiteRepository) LoadPreferences(ctx context.Context) (*domain.Preferences, error) {
	var model PreferencesModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", preferencesRowID).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("load preferences", err)
	}

	prefs := preferencesModelToDomain(model)
	return &prefs, nil
}

// SavePreferences implements PreferencesRepository.SavePreferences
func (r *SQLiteRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	model := domainToPreferencesModel(prefs)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns(preferenceColumns),
			}).
			Create(&model).Error
	}, 3)
	return storeError("save preferences", err)
}

var preferenceColumns = []string{
	"alarm_sound",
	"auto_start_break",
	"auto_start_work",
	"dnd_enabled",
	"long_break_duration",
	"mom_mode",
	"rounds_before_long_break",
	"short_break_duration",
	"updated_at",
	"vibration_enabled",
	"work_duration",
}
