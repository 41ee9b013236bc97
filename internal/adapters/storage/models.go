package storage

import "time"

// TaskModel is the GORM model for tasks table
type TaskModel struct {
	CompletedAt        *time.Time `gorm:"default:null"`
	CompletedPomodoros int        `gorm:"not null;default:0"`
	CreatedAt          time.Time
	EstimatedPomodoros int    `gorm:"not null;default:1"`
	ID                 string `gorm:"primaryKey"`
	SortOrder          int    `gorm:"not null;default:0;index:idx_tasks_sort_order"`
	Status             string `gorm:"not null;default:'IN_PROGRESS';check:status IN ('TODO','IN_PROGRESS','COMPLETED')"`
	Title              string `gorm:"not null"`
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// PomodoroModel is the GORM model for the session ledger. Timestamps are
// kept as fixed-width UTC ISO-8601 strings so they sort as text.
type PomodoroModel struct {
	Duration        int     `gorm:"not null;default:0"`
	EndedAt         *string `gorm:"default:null"`
	ID              string  `gorm:"primaryKey"`
	PlannedDuration int     `gorm:"not null;default:1500"`
	StartedAt       string  `gorm:"not null"`
	Status          string  `gorm:"not null;default:'RUNNING'"`
	TaskID          *string `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (PomodoroModel) TableName() string { return "pomodoros" }

// TagModel is the GORM model for tags table
type TagModel struct {
	Color     string `gorm:"not null;default:'#FF6347'"`
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_tags_name"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string { return "tags" }

// TaskTagModel links tasks and tags
type TaskTagModel struct {
	TagID  string `gorm:"primaryKey"`
	TaskID string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (TaskTagModel) TableName() string { return "task_tags" }

// PreferencesModel is the GORM model for the timer preferences row.
// Nullable columns fall back to the defaults when read.
type PreferencesModel struct {
	AlarmSound            *string `gorm:"default:null"`
	AutoStartBreak        *bool   `gorm:"default:null"`
	AutoStartWork         *bool   `gorm:"default:null"`
	CreatedAt             time.Time
	DNDEnabled            *bool   `gorm:"column:dnd_enabled;default:null"`
	ID                    string  `gorm:"primaryKey"`
	LongBreakDuration     *int    `gorm:"default:null"`
	MomMode               *string `gorm:"default:null"`
	RoundsBeforeLongBreak *int    `gorm:"default:null"`
	ShortBreakDuration    *int    `gorm:"default:null"`
	UpdatedAt             time.Time
	VibrationEnabled      *bool `gorm:"default:null"`
	WorkDuration          *int  `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (PreferencesModel) TableName() string { return "settings" }
