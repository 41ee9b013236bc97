package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/mama/internal/logging"
)

// SessionFactory builds the screen for one SSH session. The returned
// cleanup runs once when the session ends.
type SessionFactory func() (tea.Model, func(), error)

// sessionModel wraps a screen to run its cleanup when the user quits
type sessionModel struct {
	tea.Model
	cleanup   func()
	once      *sync.Once
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := s.Model.Update(msg)
	s.Model = updated
	return s, cmd
}

func (s *sessionModel) close() {
	s.once.Do(func() {
		s.cleanup()
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a screen for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, cleanup, err := s.newSession()
	if err != nil {
		logging.Logger.Error("Failed to create SSH session screen", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	wrapped := &sessionModel{
		Model:     model,
		cleanup:   cleanup,
		once:      &sync.Once{},
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// The session context ends on quit and on disconnect alike
	go func() {
		<-sess.Context().Done()
		wrapped.close()
	}()

	return wrapped, []tea.ProgramOption{tea.WithAltScreen()}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
