package models

import "time"

// Chat pairs two users that have exchanged at least one message.
// Created lazily on first send, never deleted.
type Chat struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"` // exactly two usernames
}

// Has reports whether username is one of the two participants.
func (c Chat) Has(username string) bool {
	for _, p := range c.Participants {
		if p == username {
			return true
		}
	}
	return false
}

// Other returns the counterpart of username in this chat.
func (c Chat) Other(username string) string {
	for _, p := range c.Participants {
		if p != username {
			return p
		}
	}
	if len(c.Participants) > 0 {
		return c.Participants[0]
	}
	return ""
}

// ChatSummary is the derived per-chat row returned by GET /api/chats.
// It is computed fresh on every request and never persisted.
type ChatSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar"`
	LastMessage string     `json:"lastMessage"`
	LastTime    *time.Time `json:"lastTime"`
	UnreadCount int        `json:"unreadCount"`
}
