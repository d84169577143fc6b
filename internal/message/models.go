package message

import (
	"errors"
	"strings"
	"time"
)

// Validation errors for new messages.
var (
	ErrReceiverRequired = errors.New("receiver_id is required")
	ErrContentRequired  = errors.New("content is required")
)

// Message is a single direct message between two users. Messages are
// immutable after creation except for the read flag, which is flipped
// upstream by the platform API.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Conversation is a derived view: all traffic between the current user and
// one counterpart, summarized by the most recent message and the number of
// unread messages addressed to the current user. It is never persisted.
type Conversation struct {
	ParticipantID string  `json:"participant_id"`
	LastMessage   Message `json:"last_message"`
	UnreadCount   int     `json:"unread_count"`
}

// CreateInput holds the fields a sender supplies for a new message.
type CreateInput struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// Validate checks the new-message fields.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.ReceiverID) == "" {
		return ErrReceiverRequired
	}
	if strings.TrimSpace(in.Content) == "" {
		return ErrContentRequired
	}
	return nil
}
