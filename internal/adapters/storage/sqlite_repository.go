package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// SQLiteRepository implements the storage ports using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.PreferencesRepository = (*SQLiteRepository)(nil)
	_ ports.SessionRepository     = (*SQLiteRepository)(nil)
	_ ports.TagRepository         = (*SQLiteRepository)(nil)
	_ ports.TaskRepository        = (*SQLiteRepository)(nil)
)

// gormLogger wraps the mama logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("MAMA_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Connection options go on the DSN so every pooled connection gets them
	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_sync=NORMAL"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&TaskModel{}, &TagModel{}, &PreferencesModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Tables with foreign keys are created by hand
	migrator := db.Migrator()

	if !migrator.HasTable(&PomodoroModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS pomodoros (
				id TEXT PRIMARY KEY,
				task_id TEXT,
				status TEXT NOT NULL DEFAULT 'RUNNING' CHECK (status IN ('RUNNING','COMPLETED','CANCELLED')),
				planned_duration INTEGER NOT NULL DEFAULT 1500,
				duration INTEGER NOT NULL DEFAULT 0,
				started_at TEXT NOT NULL,
				ended_at TEXT,
				FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE SET NULL
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create pomodoros table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_pomodoros_started_at ON pomodoros(started_at)`).Error; err != nil {
			return nil, fmt.Errorf("failed to create pomodoros index: %w", err)
		}
	}

	if !migrator.HasTable(&TaskTagModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS task_tags (
				task_id TEXT NOT NULL,
				tag_id TEXT NOT NULL,
				PRIMARY KEY (task_id, tag_id),
				FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
				FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create task_tags table: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if isBusy(err) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// domainErrors pass through storeError untouched
var domainErrors = []error{
	domain.ErrSessionEnded,
	domain.ErrSessionNotFound,
	domain.ErrTagExists,
	domain.ErrTagNotFound,
	domain.ErrTaskNotFound,
}

// storeError classifies err: domain sentinels pass through, anything else
// becomes a domain.StorageError for op
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return domain.NewStorageError(op, err)
}
