package domain

// DailyStats summarises the focus sessions of one day
type DailyStats struct {
	CancelledSessions int
	CompletedSessions int
	FocusedSeconds    int
	StreakDays        int
}

// FocusedMinutes returns the focused time rounded down to whole minutes
func (d DailyStats) FocusedMinutes() int {
	return d.FocusedSeconds / 60
}
