//go:build !darwin && !linux && !windows

package sound

import "github.com/renato0307/mama/internal/domain"

// commandsFor has no candidates on unsupported platforms, so every cue
// falls back to the terminal bell
func commandsFor(domain.SoundCue) []command {
	return nil
}
