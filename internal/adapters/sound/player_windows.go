//go:build windows

package sound

import "github.com/renato0307/mama/internal/domain"

// commandsFor returns PowerShell system sound candidates for a cue on Windows
func commandsFor(cue domain.SoundCue) []command {
	var sounds []string

	switch cue {
	case domain.SoundCheer:
		sounds = []string{"Exclamation", "Beep"}
	case domain.SoundCorrect:
		sounds = []string{"Question", "Beep"}
	case domain.SoundFart:
		sounds = []string{"Hand", "Beep"}
	case domain.SoundMagic:
		sounds = []string{"Asterisk", "Beep"}
	default:
		sounds = []string{"Asterisk", "Beep"}
	}

	commands := make([]command, 0, len(sounds))
	for _, s := range sounds {
		commands = append(commands, command{
			name: "powershell",
			args: []string{"-c", "[System.Media.SystemSounds]::" + s + ".Play()"},
		})
	}
	return commands
}
