package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.Equal(t, 1500, p.WorkDuration)
	assert.Equal(t, 300, p.ShortBreakDuration)
	assert.Equal(t, 1800, p.LongBreakDuration)
	assert.Equal(t, 4, p.RoundsBeforeLongBreak)
	assert.Equal(t, "default", p.AlarmSound)
	assert.True(t, p.VibrationEnabled)
	assert.False(t, p.DNDEnabled)
	assert.True(t, p.AutoStartBreak)
	assert.False(t, p.AutoStartWork)
	assert.Equal(t, MomModeStandard, p.MomMode)
}

func TestPreferences_SetAndGet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"work_duration", "3000", "3000"},
		{"short_break_duration", " 600 ", "600"},
		{"long_break_duration", "900", "900"},
		{"rounds_before_long_break", "2", "2"},
		{"alarm_sound", "cheer", "cheer"},
		{"vibration_enabled", "false", "false"},
		{"dnd_enabled", "true", "true"},
		{"auto_start_break", "0", "false"},
		{"auto_start_work", "1", "true"},
		{"mom_mode", "STRICT", "strict"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := DefaultPreferences()
			require.NoError(t, p.Set(tt.key, tt.value))

			got, err := p.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferences_SetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero duration", "work_duration", "0"},
		{"negative duration", "short_break_duration", "-5"},
		{"not a number", "long_break_duration", "abc"},
		{"not a bool", "dnd_enabled", "maybe"},
		{"unknown mom mode", "mom_mode", "tiger"},
		{"empty alarm", "alarm_sound", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreferences()
			assert.Error(t, p.Set(tt.key, tt.value))
			assert.Equal(t, DefaultPreferences(), p)
		})
	}
}

func TestPreferences_UnknownKey(t *testing.T) {
	p := DefaultPreferences()

	err := p.Set("colour", "red")
	assert.True(t, errors.Is(err, ErrUnknownSetting))

	_, err = p.Get("colour")
	assert.True(t, errors.Is(err, ErrUnknownSetting))
}

func TestPreferenceKeys_Sorted(t *testing.T) {
	keys := PreferenceKeys()

	assert.Len(t, keys, 10)
	assert.IsIncreasing(t, keys)
	for _, k := range keys {
		_, err := DefaultPreferences().Get(k)
		assert.NoError(t, err, k)
	}
}
