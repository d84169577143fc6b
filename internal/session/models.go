package session

import (
	"errors"
	"strings"
	"time"
)

// Session lifecycle statuses. A session is created as scheduled; completion
// and cancellation are recorded upstream by the platform API.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Validation errors for session requests.
var (
	ErrMentorRequired   = errors.New("mentor_id is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrDateTimeRequired = errors.New("date_time is required")
	ErrDurationInvalid  = errors.New("duration must be a positive number of minutes")
)

// Session represents a mentoring session between a mentor and a mentee.
// Rating and Feedback are attached upstream after completion.
type Session struct {
	ID          string    `json:"id"`
	MentorID    string    `json:"mentor_id"`
	MenteeID    string    `json:"mentee_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DateTime    time.Time `json:"date_time"`
	Duration    int       `json:"duration"` // minutes
	Status      string    `json:"status"`
	Rating      int       `json:"rating,omitempty"` // 1-5, set after completion
	Feedback    string    `json:"feedback,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Counterpart returns the other participant's id relative to userID.
func (s Session) Counterpart(userID string) string {
	if s.MentorID == userID {
		return s.MenteeID
	}
	return s.MentorID
}

// CreateInput holds the fields a mentee supplies when requesting a session.
type CreateInput struct {
	MentorID    string    `json:"mentor_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time"`
	Duration    int       `json:"duration"`
}

// Validate checks the request fields. A zero duration falls back to the
// default at creation time, so only negative values are rejected here.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.MentorID) == "" {
		return ErrMentorRequired
	}
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if in.DateTime.IsZero() {
		return ErrDateTimeRequired
	}
	if in.Duration < 0 {
		return ErrDurationInvalid
	}
	return nil
}
