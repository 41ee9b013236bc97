package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/internal/domain"
	portsmocks "github.com/renato0307/mama/internal/ports/mocks"
)

func newTestPreferencesService(t *testing.T) (*PreferencesService, *portsmocks.MockPreferencesRepository, *portsmocks.MockPreferencesFile) {
	t.Helper()
	repo := portsmocks.NewMockPreferencesRepository(t)
	file := portsmocks.NewMockPreferencesFile(t)
	return NewPreferencesService(repo, file), repo, file
}

func TestPreferencesLoad_DefaultsWhenMissing(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)
	repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, nil)

	prefs, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}

func TestPreferencesLoad_Stored(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)
	stored := domain.DefaultPreferences()
	stored.WorkDuration = 3000
	repo.EXPECT().LoadPreferences(mock.Anything).Return(&stored, nil)

	prefs, err := service.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3000, prefs.WorkDuration)
}

func TestPreferencesLoad_Error(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)
	repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, domain.NewStorageError("load preferences", errors.New("boom")))

	_, err := service.Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
}

func TestHasPreferences(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)
	prefs := domain.DefaultPreferences()
	repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, nil).Once()
	repo.EXPECT().LoadPreferences(mock.Anything).Return(&prefs, nil).Once()

	has, err := service.HasPreferences(context.Background())
	require.NoError(t, err)
	assert.False(t, has)

	has, err = service.HasPreferences(context.Background())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCreateDefaults(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)

	expected := domain.DefaultPreferences()
	expected.WorkDuration = 3000
	expected.MomMode = domain.MomModeStrict
	repo.EXPECT().SavePreferences(mock.Anything, expected).Return(nil)

	prefs, err := service.CreateDefaults(context.Background(), 3000, domain.MomModeStrict)

	require.NoError(t, err)
	assert.Equal(t, expected, prefs)
}

func TestCreateDefaults_Invalid(t *testing.T) {
	service, _, _ := newTestPreferencesService(t)

	_, err := service.CreateDefaults(context.Background(), 0, domain.MomModeGentle)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = service.CreateDefaults(context.Background(), 1500, domain.MomMode("tiger"))
	assert.Error(t, err)
}

func TestUpdatePreference(t *testing.T) {
	service, repo, _ := newTestPreferencesService(t)
	repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, nil)
	repo.EXPECT().SavePreferences(mock.Anything, mock.MatchedBy(func(p domain.Preferences) bool {
		return p.ShortBreakDuration == 600 && p.WorkDuration == domain.DefaultWorkDuration
	})).Return(nil)

	prefs, err := service.Update(context.Background(), "short_break_duration", "600")

	require.NoError(t, err)
	assert.Equal(t, 600, prefs.ShortBreakDuration)
}

func TestUpdatePreference_Invalid(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr error
	}{
		{"work_duration", "0", domain.ErrInvalidDuration},
		{"work_duration", "-60", domain.ErrInvalidDuration},
		{"colour", "blue", domain.ErrUnknownSetting},
		{"dnd_enabled", "maybe", nil},
		{"mom_mode", "tiger", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			service, repo, _ := newTestPreferencesService(t)
			repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, nil)

			_, err := service.Update(context.Background(), tt.key, tt.value)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExportPreferences(t *testing.T) {
	service, repo, file := newTestPreferencesService(t)
	repo.EXPECT().LoadPreferences(mock.Anything).Return(nil, nil)
	file.EXPECT().Write("/tmp/prefs.yaml", domain.DefaultPreferences()).Return(nil)

	require.NoError(t, service.Export(context.Background(), "/tmp/prefs.yaml"))
}

func TestImportPreferences(t *testing.T) {
	service, repo, file := newTestPreferencesService(t)
	imported := domain.DefaultPreferences()
	imported.AlarmSound = "cheer"
	file.EXPECT().Read("/tmp/prefs.yaml").Return(imported, nil)
	repo.EXPECT().SavePreferences(mock.Anything, imported).Return(nil)

	prefs, err := service.Import(context.Background(), "/tmp/prefs.yaml")

	require.NoError(t, err)
	assert.Equal(t, "cheer", prefs.AlarmSound)
}

func TestImportPreferences_ReadError(t *testing.T) {
	service, _, file := newTestPreferencesService(t)
	file.EXPECT().Read("/tmp/missing.yaml").Return(domain.Preferences{}, errors.New("no such file"))

	_, err := service.Import(context.Background(), "/tmp/missing.yaml")

	require.Error(t, err)
}
