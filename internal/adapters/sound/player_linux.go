//go:build linux

package sound

import "github.com/renato0307/mama/internal/domain"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// commandsFor returns paplay (PulseAudio) and aplay (ALSA) candidates for a
// cue on Linux
func commandsFor(cue domain.SoundCue) []command {
	var names []string

	switch cue {
	case domain.SoundCheer:
		names = []string{"complete"}
	case domain.SoundCorrect:
		names = []string{"message", "bell"}
	case domain.SoundFart:
		names = []string{"dialog-warning", "bell"}
	case domain.SoundMagic:
		names = []string{"service-login"}
	default:
		names = []string{"bell"}
	}

	var commands []command
	for _, n := range names {
		commands = append(commands,
			command{name: "paplay", args: []string{freedesktopSounds + n + ".oga"}},
			command{name: "aplay", args: []string{freedesktopSounds + n + ".wav"}},
		)
	}
	return commands
}
