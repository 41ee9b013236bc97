package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mama/internal/domain"
	portsmocks "github.com/renato0307/mama/internal/ports/mocks"
)

var ledgerNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*SessionLedger, *portsmocks.MockSessionReader, *portsmocks.MockSessionWriter) {
	t.Helper()

	reader := portsmocks.NewMockSessionReader(t)
	writer := portsmocks.NewMockSessionWriter(t)
	clock := portsmocks.NewMockClock(t)
	clock.EXPECT().Now().Return(ledgerNow).Maybe()

	ledger := NewSessionLedger(reader, writer, clock)
	ledger.newID = func() string { return "session-1" }
	return ledger, reader, writer
}

func TestCreateSession(t *testing.T) {
	ledger, _, writer := newTestLedger(t)
	taskID := "task-1"

	writer.EXPECT().Create(mock.Anything, domain.Session{
		ID:              "session-1",
		PlannedDuration: 1500,
		StartedAt:       ledgerNow,
		Status:          domain.StatusRunning,
		TaskID:          &taskID,
	}).Return(nil)

	id, err := ledger.CreateSession(context.Background(), &taskID, 1500)

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestCreateSession_WithoutTask(t *testing.T) {
	ledger, _, writer := newTestLedger(t)

	writer.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.TaskID == nil && s.Duration == 0 && s.EndedAt == nil
	})).Return(nil)

	id, err := ledger.CreateSession(context.Background(), nil, 60)

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestCreateSession_InvalidDuration(t *testing.T) {
	for _, planned := range []int{0, -1, -1500} {
		ledger, _, _ := newTestLedger(t)

		id, err := ledger.CreateSession(context.Background(), nil, planned)

		assert.ErrorIs(t, err, domain.ErrInvalidDuration)
		assert.Empty(t, id)
	}
}

func TestCreateSession_StorageFailure(t *testing.T) {
	ledger, _, writer := newTestLedger(t)

	writer.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.NewStorageError("create session", errors.New("disk I/O error")))

	id, err := ledger.CreateSession(context.Background(), nil, 1500)

	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
	assert.Empty(t, id)
}

func TestFinishSession(t *testing.T) {
	tests := []struct {
		name   string
		finish func(*SessionLedger) error
		status domain.SessionStatus
	}{
		{
			name:   "complete",
			finish: func(l *SessionLedger) error { return l.CompleteSession(context.Background(), "session-1", 1500) },
			status: domain.StatusCompleted,
		},
		{
			name:   "cancel",
			finish: func(l *SessionLedger) error { return l.CancelSession(context.Background(), "session-1", 1500) },
			status: domain.StatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, _, writer := newTestLedger(t)
			writer.EXPECT().Finish(mock.Anything, "session-1", tt.status, 1500, ledgerNow).Return(nil)

			require.NoError(t, tt.finish(ledger))
		})
	}
}

func TestCancelSession_ZeroElapsed(t *testing.T) {
	ledger, _, writer := newTestLedger(t)
	writer.EXPECT().Finish(mock.Anything, "session-1", domain.StatusCancelled, 0, ledgerNow).Return(nil)

	require.NoError(t, ledger.CancelSession(context.Background(), "session-1", 0))
}

func TestFinishSession_NegativeDuration(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	err := ledger.CompleteSession(context.Background(), "session-1", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	err = ledger.CancelSession(context.Background(), "session-1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestFinishSession_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown id", domain.ErrSessionNotFound},
		{"already ended", domain.ErrSessionEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, _, writer := newTestLedger(t)
			writer.EXPECT().Finish(mock.Anything, "missing", domain.StatusCompleted, 10, ledgerNow).Return(tt.err)

			err := ledger.CompleteSession(context.Background(), "missing", 10)

			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "missing")
		})
	}
}

func TestGetSession(t *testing.T) {
	ledger, reader, _ := newTestLedger(t)
	session := &domain.Session{ID: "session-1", Status: domain.StatusRunning}
	reader.EXPECT().Get(mock.Anything, "session-1").Return(session, nil)

	got, err := ledger.GetSession(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Same(t, session, got)
}

func TestGetSession_NotFound(t *testing.T) {
	ledger, reader, _ := newTestLedger(t)
	reader.EXPECT().Get(mock.Anything, "nope").Return(nil, domain.ErrSessionNotFound)

	_, err := ledger.GetSession(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestListSessions(t *testing.T) {
	ledger, reader, _ := newTestLedger(t)
	status := domain.StatusCompleted
	filter := domain.SessionFilter{Limit: 5, Status: &status}
	reader.EXPECT().List(mock.Anything, filter).Return([]domain.Session{{ID: "a"}, {ID: "b"}}, nil)

	sessions, err := ledger.ListSessions(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestRecoverOrphans(t *testing.T) {
	ledger, _, writer := newTestLedger(t)
	writer.EXPECT().CancelRunning(mock.Anything, ledgerNow).Return(int64(2), nil)

	n, err := ledger.RecoverOrphans(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRecoverOrphans_Failure(t *testing.T) {
	ledger, _, writer := newTestLedger(t)
	writer.EXPECT().CancelRunning(mock.Anything, ledgerNow).Return(int64(0), errors.New("locked"))

	n, err := ledger.RecoverOrphans(context.Background())

	require.Error(t, err)
	assert.Zero(t, n)
}

func TestElapsed(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	elapsed := ledger.Elapsed(domain.Session{StartedAt: ledgerNow.Add(-90 * time.Second)})

	assert.Equal(t, 90*time.Second, elapsed)
}
