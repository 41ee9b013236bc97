package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/renato0307/mama/internal/domain"
)

// Create implements SessionWriter.Create
func (r *SQLiteRepository) Create(ctx context.Context, session domain.Session) error {
	model := domainToPomodoroModel(session)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	return storeError("create session", err)
}

// Finish implements SessionWriter.Finish. The status guard and the update
// run in one statement, so concurrent finishers cannot both succeed.
func (r *SQLiteRepository) Finish(ctx context.Context, id string, status domain.SessionStatus, duration int, endedAt time.Time) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&PomodoroModel{}).
				Where("id = ? AND status = ?", id, string(domain.StatusRunning)).
				Updates(map[string]any{
					"status":   string(status),
					"duration": duration,
					"ended_at": formatTimestamp(endedAt),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				return nil
			}

			var count int64
			if err := tx.Model(&PomodoroModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrSessionNotFound
			}
			return domain.ErrSessionEnded
		})
	}, 3)
	return storeError("finish session", err)
}

// CancelRunning implements SessionWriter.CancelRunning
func (r *SQLiteRepository) CancelRunning(ctx context.Context, endedAt time.Time) (int64, error) {
	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&PomodoroModel{}).
			Where("status = ?", string(domain.StatusRunning)).
			Updates(map[string]any{
				"status":   string(domain.StatusCancelled),
				"ended_at": formatTimestamp(endedAt),
			})
		affected = result.RowsAffected
		return result.Error
	}, 3)
	if err != nil {
		return 0, storeError("cancel running sessions", err)
	}
	return affected, nil
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model PomodoroModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, storeError("get session", err)
	}

	session := pomodoroModelToDomain(model)
	return &session, nil
}

// List implements SessionReader.List. Newest sessions come first.
func (r *SQLiteRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.Session, error) {
	var models []PomodoroModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&PomodoroModel{}).Order("started_at DESC")
		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}
		if filter.TaskID != nil {
			query = query.Where("task_id = ?", *filter.TaskID)
		}
		if filter.Since != nil {
			query = query.Where("started_at >= ?", formatTimestamp(*filter.Since))
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, storeError("list sessions", err)
	}

	sessions := make([]domain.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, pomodoroModelToDomain(m))
	}
	return sessions, nil
}

// CountSessions implements SessionStatsReader.CountSessions
func (r *SQLiteRepository) CountSessions(ctx context.Context, status domain.SessionStatus, since time.Time) (int, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&PomodoroModel{}).
			Where("status = ? AND started_at >= ?", string(status), formatTimestamp(since)).
			Count(&count).Error
	}, 3)
	if err != nil {
		return 0, storeError("count sessions", err)
	}
	return int(count), nil
}

// SumDuration implements SessionStatsReader.SumDuration
func (r *SQLiteRepository) SumDuration(ctx context.Context, status domain.SessionStatus, since time.Time) (int, error) {
	var total int
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&PomodoroModel{}).
			Select("COALESCE(SUM(duration), 0)").
			Where("status = ? AND started_at >= ?", string(status), formatTimestamp(since)).
			Scan(&total).Error
	}, 3)
	if err != nil {
		return 0, storeError("sum session durations", err)
	}
	return total, nil
}

// CompletedStartTimes implements SessionStatsReader.CompletedStartTimes
func (r *SQLiteRepository) CompletedStartTimes(ctx context.Context, since time.Time) ([]time.Time, error) {
	var raw []string
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&PomodoroModel{}).
			Where("status = ? AND started_at >= ?", string(domain.StatusCompleted), formatTimestamp(since)).
			Order("started_at DESC").
			Pluck("started_at", &raw).Error
	}, 3)
	if err != nil {
		return nil, storeError("list completed start times", err)
	}

	times := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		times = append(times, parseTimestamp(s))
	}
	return times, nil
}
