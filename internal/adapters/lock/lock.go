// Package lock provides the single-instance guard for the interactive timer.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/logging"
)

// ErrLocked is returned when another process holds the lock
var ErrLocked = errors.New("another mama timer is already running")

// FileLock is an exclusive advisory lock on a file
type FileLock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without waiting. It returns ErrLocked when
// another process (or another FileLock in this process) holds it.
func Acquire(path string) (*FileLock, error) {
	path = config.ExpandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		file.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	// Record the owner for humans inspecting the file
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.Logger.Debug("Acquired lock", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file. It is safe to call more than once.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	l.file = nil

	logging.Logger.Debug("Released lock", "path", l.path)
	return errors.Join(unlockErr, closeErr)
}
