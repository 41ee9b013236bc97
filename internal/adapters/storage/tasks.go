package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/renato0307/mama/internal/domain"
)

// AddTask implements TaskWriter.AddTask. A zero SortOrder appends the task
// after the existing ones.
func (r *SQLiteRepository) AddTask(ctx context.Context, task domain.Task) error {
	model := domainToTaskModel(task)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if model.SortOrder == 0 {
				var maxOrder int
				if err := tx.Model(&TaskModel{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
					return err
				}
				model.SortOrder = maxOrder + 1
			}
			return tx.Create(&model).Error
		})
	}, 3)
	return storeError("add task", err)
}

// GetTask implements TaskReader.GetTask
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var model TaskModel
	var tags []domain.Tag

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
				return err
			}
			byTask, err := loadTaskTags(tx, []string{id})
			if err != nil {
				return err
			}
			tags = byTask[id]
			return nil
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, storeError("get task", err)
	}

	task := taskModelToDomain(model, tags)
	return &task, nil
}

// ListTasks implements TaskReader.ListTasks
func (r *SQLiteRepository) ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	var models []TaskModel
	var tagsByTask map[string][]domain.Tag

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("sort_order ASC").Order("created_at ASC")
			if !includeCompleted {
				query = query.Where("status <> ?", string(domain.TaskCompleted))
			}
			if err := query.Find(&models).Error; err != nil {
				return err
			}

			ids := make([]string, len(models))
			for i, m := range models {
				ids[i] = m.ID
			}
			var err error
			tagsByTask, err = loadTaskTags(tx, ids)
			return err
		})
	}, 3)
	if err != nil {
		return nil, storeError("list tasks", err)
	}

	tasks := make([]domain.Task, 0, len(models))
	for _, m := range models {
		tasks = append(tasks, taskModelToDomain(m, tagsByTask[m.ID]))
	}
	return tasks, nil
}

// IncrementPomodoro implements TaskWriter.IncrementPomodoro
func (r *SQLiteRepository) IncrementPomodoro(ctx context.Context, id string) error {
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"completed_pomodoros": gorm.Expr("completed_pomodoros + 1"),
				"updated_at":          time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
	return storeError("increment pomodoro", err)
}

// CompleteTask implements TaskWriter.CompleteTask
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id string, completedAt time.Time) error {
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":       string(domain.TaskCompleted),
				"completed_at": completedAt.UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
	return storeError("complete task", err)
}

// DeleteTask implements TaskWriter.DeleteTask. Sessions keep their history
// with the task reference cleared.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaskModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}
		return nil
	}, 3)
	return storeError("delete task", err)
}

// loadTaskTags returns the tags of each task id, ordered by name
func loadTaskTags(tx *gorm.DB, taskIDs []string) (map[string][]domain.Tag, error) {
	result := make(map[string][]domain.Tag)
	if len(taskIDs) == 0 {
		return result, nil
	}

	var rows []taskTagRow
	err := tx.Table("task_tags").
		Select("task_tags.task_id, tags.id AS tag_id, tags.name, tags.color").
		Joins("JOIN tags ON tags.id = task_tags.tag_id").
		Where("task_tags.task_id IN ?", taskIDs).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.TaskID] = append(result[row.TaskID], domain.Tag{
			Color: row.Color,
			ID:    row.TagID,
			Name:  row.Name,
		})
	}
	return result, nil
}

// taskTagRow is one row of the task_tags join
type taskTagRow struct {
	Color  string
	Name   string
	TagID  string
	TaskID string
}
