package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

// command is one way of producing a sound on the current platform
type command struct {
	args []string
	name string
}

// Player implements ports.SoundPlayer
type Player struct {
	bell io.Writer
	run  func(c command) error
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{
		bell: os.Stdout,
		run:  runCommand,
	}
}

// PlaySound plays the default notification sound
func (p *Player) PlaySound() error {
	return p.PlayCue(domain.SoundBell)
}

// PlayCue plays a cue with the first platform command that works, falling
// back to the terminal bell. Platform-specific candidates are in
// player_*.go files with build tags.
func (p *Player) PlayCue(cue domain.SoundCue) error {
	if cue == domain.SoundNone {
		return nil
	}

	for _, c := range commandsFor(cue) {
		err := p.run(c)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("Sound command failed", "cue", cue, "command", c.name, "error", err)
	}

	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

func runCommand(c command) error {
	return exec.Command(c.name, c.args...).Run()
}

// Silent is a SoundPlayer that never makes a sound
type Silent struct{}

var _ ports.SoundPlayer = Silent{}

// PlaySound does nothing
func (Silent) PlaySound() error { return nil }

// PlayCue does nothing
func (Silent) PlayCue(domain.SoundCue) error { return nil }
