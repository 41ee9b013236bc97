package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/mama/internal/domain"
)

// AddTag implements TagRepository.AddTag
func (r *SQLiteRepository) AddTag(ctx context.Context, tag domain.Tag) error {
	model := TagModel{Color: tag.Color, ID: tag.ID, Name: tag.Name}

	err := withRetry(func() error {
		err := r.db.WithContext(ctx).Create(&model).Error
		if isUniqueViolation(err) {
			return domain.ErrTagExists
		}
		return err
	}, 3)
	return storeError("add tag", err)
}

// GetTagByName implements TagRepository.GetTagByName
func (r *SQLiteRepository) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	var model TagModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, storeError("get tag", err)
	}

	tag := tagModelToDomain(model)
	return &tag, nil
}

// ListTags implements TagRepository.ListTags
func (r *SQLiteRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var models []TagModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, storeError("list tags", err)
	}

	tags := make([]domain.Tag, 0, len(models))
	for _, m := range models {
		tags = append(tags, tagModelToDomain(m))
	}
	return tags, nil
}

// AttachTag implements TagRepository.AttachTag. Attaching twice is a no-op.
func (r *SQLiteRepository) AttachTag(ctx context.Context, taskID, tagID string) error {
	link := TaskTagModel{TagID: tagID, TaskID: taskID}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&link).Error
	}, 3)
	return storeError("attach tag", err)
}

// DetachTag implements TagRepository.DetachTag. Detaching a missing link is a no-op.
func (r *SQLiteRepository) DetachTag(ctx context.Context, taskID, tagID string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("task_id = ? AND tag_id = ?", taskID, tagID).
			Delete(&TaskTagModel{}).Error
	}, 3)
	return storeError("detach tag", err)
}

// TaskTags implements TagRepository.TaskTags
func (r *SQLiteRepository) TaskTags(ctx context.Context, taskID string) ([]domain.Tag, error) {
	var byTask map[string][]domain.Tag
	err := withRetry(func() error {
		var err error
		byTask, err = loadTaskTags(r.db.WithContext(ctx), []string{taskID})
		return err
	}, 3)
	if err != nil {
		return nil, storeError("list task tags", err)
	}

	tags := byTask[taskID]
	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}
