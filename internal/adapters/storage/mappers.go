package storage

import (
	"time"

	"github.com/renato0307/mama/internal/domain"
)

// timestampLayout is ISO-8601 in UTC with millisecond precision
const timestampLayout = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		// Rows written by other tools may carry a full RFC 3339 value
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC()
}

// pomodoroModelToDomain converts a PomodoroModel (GORM) to domain.Session
func pomodoroModelToDomain(m PomodoroModel) domain.Session {
	var endedAt *time.Time
	if m.EndedAt != nil {
		t := parseTimestamp(*m.EndedAt)
		endedAt = &t
	}

	return domain.Session{
		Duration:        m.Duration,
		EndedAt:         endedAt,
		ID:              m.ID,
		PlannedDuration: m.PlannedDuration,
		StartedAt:       parseTimestamp(m.StartedAt),
		Status:          domain.SessionStatus(m.Status),
		TaskID:          m.TaskID,
	}
}

// domainToPomodoroModel converts a domain.Session to PomodoroModel (GORM)
func domainToPomodoroModel(s domain.Session) PomodoroModel {
	var endedAt *string
	if s.EndedAt != nil {
		v := formatTimestamp(*s.EndedAt)
		endedAt = &v
	}

	return PomodoroModel{
		Duration:        s.Duration,
		EndedAt:         endedAt,
		ID:              s.ID,
		PlannedDuration: s.PlannedDuration,
		StartedAt:       formatTimestamp(s.StartedAt),
		Status:          string(s.Status),
		TaskID:          s.TaskID,
	}
}

// taskModelToDomain converts a TaskModel (GORM) to domain.Task
func taskModelToDomain(m TaskModel, tags []domain.Tag) domain.Task {
	return domain.Task{
		CompletedAt:        m.CompletedAt,
		CompletedPomodoros: m.CompletedPomodoros,
		CreatedAt:          m.CreatedAt,
		EstimatedPomodoros: m.EstimatedPomodoros,
		ID:                 m.ID,
		SortOrder:          m.SortOrder,
		Status:             domain.TaskStatus(m.Status),
		Tags:               tags,
		Title:              m.Title,
	}
}

// domainToTaskModel converts a domain.Task to TaskModel (GORM)
func domainToTaskModel(t domain.Task) TaskModel {
	return TaskModel{
		CompletedAt:        t.CompletedAt,
		CompletedPomodoros: t.CompletedPomodoros,
		CreatedAt:          t.CreatedAt,
		EstimatedPomodoros: t.EstimatedPomodoros,
		ID:                 t.ID,
		SortOrder:          t.SortOrder,
		Status:             string(t.Status),
		Title:              t.Title,
	}
}

// tagModelToDomain converts a TagModel (GORM) to domain.Tag
func tagModelToDomain(m TagModel) domain.Tag {
	return domain.Tag{
		Color: m.Color,
		ID:    m.ID,
		Name:  m.Name,
	}
}

// preferencesModelToDomain fills unset columns with defaults
func preferencesModelToDomain(m PreferencesModel) domain.Preferences {
	p := domain.DefaultPreferences()

	if m.AlarmSound != nil {
		p.AlarmSound = *m.AlarmSound
	}
	if m.AutoStartBreak != nil {
		p.AutoStartBreak = *m.AutoStartBreak
	}
	if m.AutoStartWork != nil {
		p.AutoStartWork = *m.AutoStartWork
	}
	if m.DNDEnabled != nil {
		p.DNDEnabled = *m.DNDEnabled
	}
	if m.LongBreakDuration != nil {
		p.LongBreakDuration = *m.LongBreakDuration
	}
	if m.MomMode != nil {
		if mode, err := domain.ParseMomMode(*m.MomMode); err == nil {
			p.MomMode = mode
		}
	}
	if m.RoundsBeforeLongBreak != nil {
		p.RoundsBeforeLongBreak = *m.RoundsBeforeLongBreak
	}
	if m.ShortBreakDuration != nil {
		p.ShortBreakDuration = *m.ShortBreakDuration
	}
	if m.VibrationEnabled != nil {
		p.VibrationEnabled = *m.VibrationEnabled
	}
	if m.WorkDuration != nil {
		p.WorkDuration = *m.WorkDuration
	}

	return p
}

// domainToPreferencesModel converts domain.Preferences to the singleton row
func domainToPreferencesModel(p domain.Preferences) PreferencesModel {
	mode := string(p.MomMode)
	return PreferencesModel{
		AlarmSound:            &p.AlarmSound,
		AutoStartBreak:        &p.AutoStartBreak,
		AutoStartWork:         &p.AutoStartWork,
		DNDEnabled:            &p.DNDEnabled,
		ID:                    preferencesRowID,
		LongBreakDuration:     &p.LongBreakDuration,
		MomMode:               &mode,
		RoundsBeforeLongBreak: &p.RoundsBeforeLongBreak,
		ShortBreakDuration:    &p.ShortBreakDuration,
		VibrationEnabled:      &p.VibrationEnabled,
		WorkDuration:          &p.WorkDuration,
	}
}
