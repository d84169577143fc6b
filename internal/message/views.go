package message

import (
	"sort"
	"strings"

	"github.com/alecgard/mentorloop/internal/user"
)

// UnreadCount returns the number of messages addressed to userID that have
// not been read yet.
func UnreadCount(messages []Message, userID string) int {
	n := 0
	for _, m := range messages {
		if m.ReceiverID == userID && !m.Read {
			n++
		}
	}
	return n
}

// ForUser returns messages the user sent or received, preserving input order.
func ForUser(messages []Message, userID string) []Message {
	out := []Message{}
	for _, m := range messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out
}

// GroupConversations partitions the given messages into one Conversation per
// counterpart of currentUserID. Each conversation carries the most recent
// message of the thread and the count of unread messages addressed to the
// current user. The result is ordered by last-message timestamp, most recent
// first; ties keep the counterpart's first appearance in the input.
//
// Messages where currentUserID is neither sender nor receiver are ignored,
// so callers may pass the full collection or a pre-filtered slice. A
// counterpart id that resolves to no known user still produces a
// conversation; name resolution is the caller's concern.
func GroupConversations(messages []Message, currentUserID string) []Conversation {
	byParticipant := map[string]*Conversation{}
	order := []string{}

	for _, m := range messages {
		var other string
		switch currentUserID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}

		c, ok := byParticipant[other]
		if !ok {
			c = &Conversation{ParticipantID: other, LastMessage: m}
			byParticipant[other] = c
			order = append(order, other)
		} else if m.Timestamp.After(c.LastMessage.Timestamp) {
			c.LastMessage = m
		}
		if m.ReceiverID == currentUserID && !m.Read {
			c.UnreadCount++
		}
	}

	out := make([]Conversation, 0, len(order))
	for _, id := range order {
		out = append(out, *byParticipant[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessage.Timestamp.After(out[j].LastMessage.Timestamp)
	})
	return out
}

// Thread returns the messages exchanged between the current user and otherID
// in chronological order.
func Thread(messages []Message, currentUserID, otherID string) []Message {
	out := []Message{}
	for _, m := range messages {
		if (m.SenderID == currentUserID && m.ReceiverID == otherID) ||
			(m.SenderID == otherID && m.ReceiverID == currentUserID) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// FilterConversations returns the conversations whose participant name or
// last message content contains term, case-insensitively. An empty term
// matches everything. Participants missing from users match on content only.
func FilterConversations(convs []Conversation, users []user.User, term string) []Conversation {
	if term == "" {
		return convs
	}
	t := strings.ToLower(term)
	out := []Conversation{}
	for _, c := range convs {
		if strings.Contains(strings.ToLower(c.LastMessage.Content), t) {
			out = append(out, c)
			continue
		}
		if p := user.ByID(users, c.ParticipantID); p != nil &&
			strings.Contains(strings.ToLower(p.Name), t) {
			out = append(out, c)
		}
	}
	return out
}
