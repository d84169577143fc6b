package session

import "time"

// Tabs on the sessions page.
const (
	TabUpcoming  = "upcoming"
	TabCompleted = "completed"
	TabAll       = "all"
)

// Upcoming returns sessions that are still scheduled and start after now,
// preserving input order. Callers wanting chronological order sort by
// DateTime themselves.
func Upcoming(sessions []Session, now time.Time) []Session {
	out := []Session{}
	for _, s := range sessions {
		if s.Status == StatusScheduled && s.DateTime.After(now) {
			out = append(out, s)
		}
	}
	return out
}

// Completed returns sessions with the completed status, preserving input order.
func Completed(sessions []Session) []Session {
	out := []Session{}
	for _, s := range sessions {
		if s.Status == StatusCompleted {
			out = append(out, s)
		}
	}
	return out
}

// ForUser returns sessions where the user participates as mentor or mentee.
func ForUser(sessions []Session, userID string) []Session {
	out := []Session{}
	for _, s := range sessions {
		if s.MentorID == userID || s.MenteeID == userID {
			out = append(out, s)
		}
	}
	return out
}

// FilterByTab applies the sessions-page tab filter. Unknown tabs behave
// like TabAll.
func FilterByTab(sessions []Session, tab string, now time.Time) []Session {
	switch tab {
	case TabUpcoming:
		return Upcoming(sessions, now)
	case TabCompleted:
		return Completed(sessions)
	default:
		out := make([]Session, 0, len(sessions))
		return append(out, sessions...)
	}
}
