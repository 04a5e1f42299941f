package models

// Habit represents a recurring practice to track.
//
// CompletedDates holds the distinct calendar days (YYYY-MM-DD) the habit
// was marked done. Streak is the stored consecutive-day count; it is
// incremented on the mark-done path and only recomputed from
// CompletedDates on the un-mark path, so it can run ahead of the recorded
// dates when days were skipped.
type Habit struct {
	ID             int64    `json:"id"`
	Text           string   `json:"text"`
	CompletedDates []string `json:"completed_dates"`
	Streak         int      `json:"streak"`
}

// DoneOn reports whether the habit was marked done on the given day.
func (h Habit) DoneOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
