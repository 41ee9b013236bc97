package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// TagService manages tags and their links to tasks
type TagService struct {
	newID func() string
	repo  ports.TagRepository
	tasks ports.TaskReader
}

// NewTagService creates a new TagService
func NewTagService(repo ports.TagRepository, tasks ports.TaskReader) *TagService {
	return &TagService{
		newID: uuid.NewString,
		repo:  repo,
		tasks: tasks,
	}
}

// Create adds a tag. An empty color uses domain.DefaultTagColor.
func (s *TagService) Create(ctx context.Context, name, color string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name cannot be empty")
	}
	if color == "" {
		color = domain.DefaultTagColor
	}
	if !domain.ValidTagColor(color) {
		return nil, fmt.Errorf("invalid tag color %q (expected #RRGGBB)", color)
	}

	tag := domain.Tag{
		Color: strings.ToUpper(color),
		ID:    s.newID(),
		Name:  name,
	}

	if err := s.repo.AddTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to add tag %s: %w", name, err)
	}

	logging.Logger.Info("Tag added", "tag_id", tag.ID, "name", name, "color", tag.Color)
	return &tag, nil
}

// List returns all tags ordered by name
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// AddToTask links the tag named tagName to a task
func (s *TagService) AddToTask(ctx context.Context, taskID, tagName string) error {
	tag, err := s.resolve(ctx, taskID, tagName)
	if err != nil {
		return err
	}

	if err := s.repo.AttachTag(ctx, taskID, tag.ID); err != nil {
		return fmt.Errorf("failed to attach tag %s: %w", tagName, err)
	}

	logging.Logger.Info("Tag attached", "task_id", taskID, "tag", tagName)
	return nil
}

// RemoveFromTask unlinks the tag named tagName from a task
func (s *TagService) RemoveFromTask(ctx context.Context, taskID, tagName string) error {
	tag, err := s.resolve(ctx, taskID, tagName)
	if err != nil {
		return err
	}

	if err := s.repo.DetachTag(ctx, taskID, tag.ID); err != nil {
		return fmt.Errorf("failed to detach tag %s: %w", tagName, err)
	}

	logging.Logger.Info("Tag detached", "task_id", taskID, "tag", tagName)
	return nil
}

// TaskTags returns the tags linked to a task
func (s *TagService) TaskTags(ctx context.Context, taskID string) ([]domain.Tag, error) {
	if _, err := s.tasks.GetTask(ctx, taskID); err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}

	tags, err := s.repo.TaskTags(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for task %s: %w", taskID, err)
	}
	return tags, nil
}

func (s *TagService) resolve(ctx context.Context, taskID, tagName string) (*domain.Tag, error) {
	if _, err := s.tasks.GetTask(ctx, taskID); err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}

	tag, err := s.repo.GetTagByName(ctx, strings.TrimSpace(tagName))
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %s: %w", tagName, err)
	}
	return tag, nil
}
