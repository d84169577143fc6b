package store

import (
	"time"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/user"
)

// DashboardStats is the summary shown on the dashboard for the current user.
type DashboardStats struct {
	UpcomingSessions int     `json:"upcoming_sessions"`
	UnreadMessages   int     `json:"unread_messages"`
	TotalSessions    int     `json:"total_sessions"`
	Rating           float64 `json:"rating"`
}

// DashboardStats derives the current user's dashboard summary. The upcoming
// count is scoped to sessions the user participates in. TotalSessions falls
// back to counting the user's completed sessions when the profile aggregate
// is zero. Returns false when no user is logged in.
func (s *Store) DashboardStats(now time.Time) (DashboardStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return DashboardStats{}, false
	}
	uid := s.current.ID

	mine := session.ForUser(s.sessions, uid)
	stats := DashboardStats{
		UpcomingSessions: len(session.Upcoming(mine, now)),
		UnreadMessages:   message.UnreadCount(s.messages, uid),
		TotalSessions:    s.current.TotalSessions,
		Rating:           s.current.Rating,
	}
	if stats.TotalSessions == 0 {
		stats.TotalSessions = len(session.Completed(mine))
	}
	return stats, true
}

// AdminOverview is the platform-wide summary shown on the admin panel.
type AdminOverview struct {
	TotalUsers        int `json:"total_users"`
	Mentors           int `json:"mentors"`
	Mentees           int `json:"mentees"`
	Admins            int `json:"admins"`
	TotalSessions     int `json:"total_sessions"`
	Scheduled         int `json:"scheduled"`
	CompletedSessions int `json:"completed"`
	Cancelled         int `json:"cancelled"`
	TotalMessages     int `json:"total_messages"`
}

// AdminOverview derives the platform-wide counts from the collections.
func (s *Store) AdminOverview() AdminOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o := AdminOverview{
		TotalUsers:    len(s.users),
		TotalSessions: len(s.sessions),
		TotalMessages: len(s.messages),
	}
	for _, u := range s.users {
		switch u.Role {
		case user.RoleMentor:
			o.Mentors++
		case user.RoleMentee:
			o.Mentees++
		case user.RoleAdmin:
			o.Admins++
		}
	}
	for _, sess := range s.sessions {
		switch sess.Status {
		case session.StatusScheduled:
			o.Scheduled++
		case session.StatusCompleted:
			o.CompletedSessions++
		case session.StatusCancelled:
			o.Cancelled++
		}
	}
	return o
}
