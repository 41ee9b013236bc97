package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MomMode controls how insistent the focus companion is
type MomMode string

const (
	MomModeGentle   MomMode = "gentle"
	MomModeStandard MomMode = "standard"
	MomModeStrict   MomMode = "strict"
)

// Default timer preferences
const (
	DefaultAlarmSound            = "default"
	DefaultLongBreakDuration     = 1800
	DefaultRoundsBeforeLongBreak = 4
	DefaultShortBreakDuration    = 300
	DefaultWorkDuration          = 1500
)

// Preferences holds the user's timer preferences. Durations are in seconds.
type Preferences struct {
	AlarmSound            string
	AutoStartBreak        bool
	AutoStartWork         bool
	DNDEnabled            bool
	LongBreakDuration     int
	MomMode               MomMode
	RoundsBeforeLongBreak int
	ShortBreakDuration    int
	VibrationEnabled      bool
	WorkDuration          int
}

// DefaultPreferences returns the preferences used before onboarding
func DefaultPreferences() Preferences {
	return Preferences{
		AlarmSound:            DefaultAlarmSound,
		AutoStartBreak:        true,
		AutoStartWork:         false,
		DNDEnabled:            false,
		LongBreakDuration:     DefaultLongBreakDuration,
		MomMode:               MomModeStandard,
		RoundsBeforeLongBreak: DefaultRoundsBeforeLongBreak,
		ShortBreakDuration:    DefaultShortBreakDuration,
		VibrationEnabled:      true,
		WorkDuration:          DefaultWorkDuration,
	}
}

// ParseMomMode validates a mom mode name
func ParseMomMode(s string) (MomMode, error) {
	switch MomMode(strings.ToLower(strings.TrimSpace(s))) {
	case MomModeGentle:
		return MomModeGentle, nil
	case MomModeStandard:
		return MomModeStandard, nil
	case MomModeStrict:
		return MomModeStrict, nil
	}
	return "", fmt.Errorf("invalid mom mode %q (valid: gentle, standard, strict)", s)
}

// preferenceSetters maps setting keys to parsers that apply a raw value
var preferenceSetters = map[string]func(p *Preferences, v string) error{
	"alarm_sound": func(p *Preferences, v string) error {
		if v == "" {
			return fmt.Errorf("alarm_sound cannot be empty")
		}
		p.AlarmSound = v
		return nil
	},
	"auto_start_break":         boolSetter(func(p *Preferences, b bool) { p.AutoStartBreak = b }),
	"auto_start_work":          boolSetter(func(p *Preferences, b bool) { p.AutoStartWork = b }),
	"dnd_enabled":              boolSetter(func(p *Preferences, b bool) { p.DNDEnabled = b }),
	"long_break_duration":      positiveIntSetter(func(p *Preferences, n int) { p.LongBreakDuration = n }),
	"rounds_before_long_break": positiveIntSetter(func(p *Preferences, n int) { p.RoundsBeforeLongBreak = n }),
	"short_break_duration":     positiveIntSetter(func(p *Preferences, n int) { p.ShortBreakDuration = n }),
	"vibration_enabled":        boolSetter(func(p *Preferences, b bool) { p.VibrationEnabled = b }),
	"work_duration":            positiveIntSetter(func(p *Preferences, n int) { p.WorkDuration = n }),
	"mom_mode": func(p *Preferences, v string) error {
		mode, err := ParseMomMode(v)
		if err != nil {
			return err
		}
		p.MomMode = mode
		return nil
	},
}

// PreferenceKeys returns the settable keys in sorted order
func PreferenceKeys() []string {
	keys := make([]string, 0, len(preferenceSetters))
	for k := range preferenceSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set parses value and applies it to the field named by key
func (p *Preferences) Set(key, value string) error {
	setter, ok := preferenceSetters[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return setter(p, strings.TrimSpace(value))
}

// Get returns the value of key formatted as a string
func (p Preferences) Get(key string) (string, error) {
	switch key {
	case "alarm_sound":
		return p.AlarmSound, nil
	case "auto_start_break":
		return strconv.FormatBool(p.AutoStartBreak), nil
	case "auto_start_work":
		return strconv.FormatBool(p.AutoStartWork), nil
	case "dnd_enabled":
		return strconv.FormatBool(p.DNDEnabled), nil
	case "long_break_duration":
		return strconv.Itoa(p.LongBreakDuration), nil
	case "mom_mode":
		return string(p.MomMode), nil
	case "rounds_before_long_break":
		return strconv.Itoa(p.RoundsBeforeLongBreak), nil
	case "short_break_duration":
		return strconv.Itoa(p.ShortBreakDuration), nil
	case "vibration_enabled":
		return strconv.FormatBool(p.VibrationEnabled), nil
	case "work_duration":
		return strconv.Itoa(p.WorkDuration), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

func boolSetter(apply func(p *Preferences, b bool)) func(p *Preferences, v string) error {
	return func(p *Preferences, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		apply(p, b)
		return nil
	}
}

func positiveIntSetter(apply func(p *Preferences, n int)) func(p *Preferences, v string) error {
	return func(p *Preferences, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid number %q", v)
		}
		if n <= 0 {
			return ErrInvalidDuration
		}
		apply(p, n)
		return nil
	}
}
