package domain

// SoundCue names a sound the player knows how to produce
type SoundCue string

const (
	SoundBell    SoundCue = "bell"
	SoundCheer   SoundCue = "cheer"
	SoundCorrect SoundCue = "correct"
	SoundFart    SoundCue = "fart"
	SoundMagic   SoundCue = "magic"
	SoundNone    SoundCue = "none"
)

// SoundCues lists every known cue
var SoundCues = []SoundCue{SoundBell, SoundCheer, SoundCorrect, SoundFart, SoundMagic, SoundNone}

// CueForAlarm resolves the alarm_sound preference into a cue.
// "default" and unknown names fall back to the bell.
func CueForAlarm(alarm string) SoundCue {
	for _, c := range SoundCues {
		if string(c) == alarm {
			return c
		}
	}
	return SoundBell
}

// HalfwayCue picks the cue played at the halfway mark for a mom mode
func HalfwayCue(mode MomMode) SoundCue {
	switch mode {
	case MomModeGentle:
		return SoundNone
	case MomModeStrict:
		return SoundFart
	default:
		return SoundMagic
	}
}
