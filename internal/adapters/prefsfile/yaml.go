// Package prefsfile reads and writes timer preferences as YAML files.
package prefsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/ports"
)

// yamlPreferences is the file layout. Durations are in seconds. Pointer
// fields tell missing keys apart from zero values.
type yamlPreferences struct {
	AlarmSound            *string `yaml:"alarm_sound,omitempty"`
	AutoStartBreak        *bool   `yaml:"auto_start_break,omitempty"`
	AutoStartWork         *bool   `yaml:"auto_start_work,omitempty"`
	DNDEnabled            *bool   `yaml:"dnd_enabled,omitempty"`
	LongBreakDuration     *int    `yaml:"long_break_duration,omitempty"`
	MomMode               *string `yaml:"mom_mode,omitempty"`
	RoundsBeforeLongBreak *int    `yaml:"rounds_before_long_break,omitempty"`
	ShortBreakDuration    *int    `yaml:"short_break_duration,omitempty"`
	VibrationEnabled      *bool   `yaml:"vibration_enabled,omitempty"`
	WorkDuration          *int    `yaml:"work_duration,omitempty"`
}

// YAMLFile implements ports.PreferencesFile
type YAMLFile struct{}

var _ ports.PreferencesFile = YAMLFile{}

// NewYAMLFile creates a new YAMLFile
func NewYAMLFile() YAMLFile {
	return YAMLFile{}
}

// Read parses a preferences file. Missing keys keep their defaults and
// every present value is validated like a single-key update.
func (YAMLFile) Read(path string) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs, fmt.Errorf("read preferences file: %w", err)
	}

	var file yamlPreferences
	if err := yaml.Unmarshal(data, &file); err != nil {
		return prefs, fmt.Errorf("parse preferences yaml: %w", err)
	}

	for key, value := range file.values() {
		if err := prefs.Set(key, value); err != nil {
			return domain.DefaultPreferences(), fmt.Errorf("invalid %s in %s: %w", key, path, err)
		}
	}
	return prefs, nil
}

// Write stores prefs at path, creating parent directories
func (YAMLFile) Write(path string, prefs domain.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	momMode := string(prefs.MomMode)
	file := yamlPreferences{
		AlarmSound:            &prefs.AlarmSound,
		AutoStartBreak:        &prefs.AutoStartBreak,
		AutoStartWork:         &prefs.AutoStartWork,
		DNDEnabled:            &prefs.DNDEnabled,
		LongBreakDuration:     &prefs.LongBreakDuration,
		MomMode:               &momMode,
		RoundsBeforeLongBreak: &prefs.RoundsBeforeLongBreak,
		ShortBreakDuration:    &prefs.ShortBreakDuration,
		VibrationEnabled:      &prefs.VibrationEnabled,
		WorkDuration:          &prefs.WorkDuration,
	}

	serialized, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}

// values returns the present keys as raw strings keyed by setting name
func (f yamlPreferences) values() map[string]string {
	values := make(map[string]string)

	if f.AlarmSound != nil {
		values["alarm_sound"] = *f.AlarmSound
	}
	if f.MomMode != nil {
		values["mom_mode"] = *f.MomMode
	}
	for key, b := range map[string]*bool{
		"auto_start_break":  f.AutoStartBreak,
		"auto_start_work":   f.AutoStartWork,
		"dnd_enabled":       f.DNDEnabled,
		"vibration_enabled": f.VibrationEnabled,
	} {
		if b != nil {
			values[key] = strconv.FormatBool(*b)
		}
	}
	for key, n := range map[string]*int{
		"long_break_duration":      f.LongBreakDuration,
		"rounds_before_long_break": f.RoundsBeforeLongBreak,
		"short_break_duration":     f.ShortBreakDuration,
		"work_duration":            f.WorkDuration,
	} {
		if n != nil {
			values[key] = strconv.Itoa(*n)
		}
	}
	return values
}
