package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/internal/domain"
	portsmocks "github.com/renato0307/mama/internal/ports/mocks"
)

func newTestTagService(t *testing.T) (*TagService, *portsmocks.MockTagRepository, *portsmocks.MockTaskReader) {
	t.Helper()
	repo := portsmocks.NewMockTagRepository(t)
	tasks := portsmocks.NewMockTaskReader(t)

	service := NewTagService(repo, tasks)
	service.newID = func() string { return "tag-1" }
	return service, repo, tasks
}

func TestCreateTag(t *testing.T) {
	service, repo, _ := newTestTagService(t)
	repo.EXPECT().AddTag(mock.Anything, domain.Tag{Color: "#00FF7F", ID: "tag-1", Name: "writing"}).Return(nil)

	tag, err := service.Create(context.Background(), "writing", "#00ff7f")

	require.NoError(t, err)
	assert.Equal(t, "#00FF7F", tag.Color)
}

func TestCreateTag_DefaultColor(t *testing.T) {
	service, repo, _ := newTestTagService(t)
	repo.EXPECT().AddTag(mock.Anything, domain.Tag{Color: domain.DefaultTagColor, ID: "tag-1", Name: "deep"}).Return(nil)

	tag, err := service.Create(context.Background(), "deep", "")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTagColor, tag.Color)
}

func TestCreateTag_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		color string
	}{
		{"empty name", " ", "#FFFFFF"},
		{"named color", "work", "red"},
		{"short hex", "work", "#FFF"},
		{"missing hash", "work", "FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestTagService(t)

			_, err := service.Create(context.Background(), tt.tag, tt.color)

			assert.Error(t, err)
		})
	}
}

func TestCreateTag_Duplicate(t *testing.T) {
	service, repo, _ := newTestTagService(t)
	repo.EXPECT().AddTag(mock.Anything, mock.Anything).Return(domain.ErrTagExists)

	_, err := service.Create(context.Background(), "writing", "")

	assert.ErrorIs(t, err, domain.ErrTagExists)
}

func TestAddToTask(t *testing.T) {
	service, repo, tasks := newTestTagService(t)
	tasks.EXPECT().GetTask(mock.Anything, "task-1").Return(&domain.Task{ID: "task-1"}, nil)
	repo.EXPECT().GetTagByName(mock.Anything, "writing").Return(&domain.Tag{ID: "tag-9", Name: "writing"}, nil)
	repo.EXPECT().AttachTag(mock.Anything, "task-1", "tag-9").Return(nil)

	require.NoError(t, service.AddToTask(context.Background(), "task-1", "writing"))
}

func TestAddToTask_UnknownTask(t *testing.T) {
	service, _, tasks := newTestTagService(t)
	tasks.EXPECT().GetTask(mock.Anything, "nope").Return(nil, domain.ErrTaskNotFound)

	err := service.AddToTask(context.Background(), "nope", "writing")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAddToTask_UnknownTag(t *testing.T) {
	service, repo, tasks := newTestTagService(t)
	tasks.EXPECT().GetTask(mock.Anything, "task-1").Return(&domain.Task{ID: "task-1"}, nil)
	repo.EXPECT().GetTagByName(mock.Anything, "nope").Return(nil, domain.ErrTagNotFound)

	err := service.AddToTask(context.Background(), "task-1", "nope")

	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestRemoveFromTask(t *testing.T) {
	service, repo, tasks := newTestTagService(t)
	tasks.EXPECT().GetTask(mock.Anything, "task-1").Return(&domain.Task{ID: "task-1"}, nil)
	repo.EXPECT().GetTagByName(mock.Anything, "writing").Return(&domain.Tag{ID: "tag-9", Name: "writing"}, nil)
	repo.EXPECT().DetachTag(mock.Anything, "task-1", "tag-9").Return(nil)

	require.NoError(t, service.RemoveFromTask(context.Background(), "task-1", "writing"))
}

func TestTaskTags(t *testing.T) {
	service, repo, tasks := newTestTagService(t)
	tasks.EXPECT().GetTask(mock.Anything, "task-1").Return(&domain.Task{ID: "task-1"}, nil)
	repo.EXPECT().TaskTags(mock.Anything, "task-1").Return([]domain.Tag{{Name: "a"}, {Name: "b"}}, nil)

	tags, err := service.TaskTags(context.Background(), "task-1")

	require.NoError(t, err)
	assert.Len(t, tags, 2)
}
