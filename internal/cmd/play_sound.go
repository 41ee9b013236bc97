package cmd

import (
	"fmt"

	"github.com/renato0307/mama/internal/domain"
)

// PlaySoundCmd plays a sound cue
type PlaySoundCmd struct {
	Cue string `arg:"" optional:"" help:"Cue to play (bell, cheer, correct, fart, magic, none)" default:"bell"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(container *Container) error {
	for _, cue := range domain.SoundCues {
		if string(cue) == p.Cue {
			return container.SoundPlayer.PlayCue(cue)
		}
	}
	return fmt.Errorf("unknown sound cue '%s'", p.Cue)
}
