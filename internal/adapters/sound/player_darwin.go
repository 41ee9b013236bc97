//go:build darwin

package sound

import "github.com/renato0307/mama/internal/domain"

// commandsFor returns afplay candidates for a cue on macOS
func commandsFor(cue domain.SoundCue) []command {
	var files []string

	switch cue {
	case domain.SoundCheer:
		files = []string{"/System/Library/Sounds/Hero.aiff", "/System/Library/Sounds/Glass.aiff"}
	case domain.SoundCorrect:
		files = []string{"/System/Library/Sounds/Ping.aiff", "/System/Library/Sounds/Tink.aiff"}
	case domain.SoundFart:
		files = []string{"/System/Library/Sounds/Basso.aiff", "/System/Library/Sounds/Funk.aiff"}
	case domain.SoundMagic:
		files = []string{"/System/Library/Sounds/Purr.aiff", "/System/Library/Sounds/Submarine.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	commands := make([]command, 0, len(files))
	for _, f := range files {
		commands = append(commands, command{name: "afplay", args: []string{f}})
	}
	return commands
}
