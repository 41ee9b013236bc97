//go:build unix

package lock

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mama.lock")

	l, err := Acquire(path)
	require.NoError(t, err)
	defer l.Release()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(content)))
}

func TestAcquire_AlreadyHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mama.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	defer first.Release()

	second, err := Acquire(path)

	assert.ErrorIs(t, err, ErrLocked)
	assert.Nil(t, second)
}

func TestRelease_AllowsReacquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mama.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	second, err := Acquire(path)
	require.NoError(t, err)
	assert.NoError(t, second.Release())
}

func TestRelease_Nil(t *testing.T) {
	var l *FileLock
	assert.NoError(t, l.Release())
}
