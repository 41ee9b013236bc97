package ports

import (
	"context"

	"github.com/renato0307/mama/internal/domain"
)

// TagRepository manages tags and their links to tasks
type TagRepository interface {
	AddTag(ctx context.Context, tag domain.Tag) error
	AttachTag(ctx context.Context, taskID, tagID string) error
	DetachTag(ctx context.Context, taskID, tagID string) error
	GetTagByName(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	TaskTags(ctx context.Context, taskID string) ([]domain.Tag, error)
}
