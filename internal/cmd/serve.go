package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/mama/internal/config"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/server"
)

// ServeCmd serves the timer over SSH
type ServeCmd struct {
	Address         string `help:"Address to listen on (default: ssh_address setting or localhost:23234)"`
	AuthorizedKeys  string `help:"authorized_keys file listing the keys allowed in" default:"~/.ssh/authorized_keys"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI, container *Container) error {
	address := s.Address
	if address == "" {
		address = config.DefaultSSHAddress
		if cli.settings != nil && cli.settings.SSHAddress != "" {
			address = cli.settings.SSHAddress
		}
	}

	// Validate key bindings before accepting anyone
	if _, err := keyBindings(cli.settings); err != nil {
		return err
	}

	fileLock, err := acquireLock()
	if err != nil {
		return err
	}
	defer fileLock.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container.RecoverOrphans(ctx)

	clearDelay := errorClearDelay(cli.settings, s.ErrorClearDelay)
	newSession := func() (tea.Model, func(), error) {
		focus := container.NewFocusService()
		model, err := container.NewTimerModel(focus, clearDelay)
		if err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			if err := focus.Close(context.Background()); err != nil {
				logging.Logger.Error("Failed to close focus session for closed SSH session", "error", err)
			}
		}
		return model, cleanup, nil
	}

	srv, err := server.NewServer(address, config.GetSSHDir(), config.ExpandPath(s.AuthorizedKeys), newSession)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
