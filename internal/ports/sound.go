package ports

import "github.com/renato0307/mama/internal/domain"

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the default notification sound
	PlaySound() error

	// PlayCue plays a named sound cue
	PlayCue(cue domain.SoundCue) error
}
