package storage

import (
	"log"
	"sync"
	"time"

	"github.com/EgyRem/advan/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	messagesCollection = "messages"
	chatsCollection    = "chats"
)

// ChatStore owns the messages and chats collections. Every read-modify-write
// runs under one mutex so two interleaved sends (or a send racing the
// chat get-or-create) cannot overwrite each other's document.
type ChatStore struct {
	mu  sync.Mutex
	col Collections
}

func NewChatStore(col Collections) *ChatStore {
	return &ChatStore{col: col}
}

func (s *ChatStore) messages() []models.Message {
	msgs := []models.Message{}
	if err := s.col.Read(messagesCollection, &msgs); err != nil {
		log.Println("error reading messages collection:", err)
		return []models.Message{}
	}
	return msgs
}

func (s *ChatStore) chats() []models.Chat {
	chats := []models.Chat{}
	if err := s.col.Read(chatsCollection, &chats); err != nil {
		log.Println("error reading chats collection:", err)
		return []models.Chat{}
	}
	return chats
}

// AddMessage appends a new unread message and returns it. Either text or an
// attachment must be present; handlers reject the request before calling
// this otherwise. Persistence is best-effort: a failed write is logged and
// the constructed message is still returned.
func (s *ChatStore) AddMessage(from, to, text string, file *models.Attachment) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Text:      text,
		Timestamp: time.Now().UTC(),
		Read:      false,
	}
	if file != nil {
		msg.FileURL = file.FileURL
		msg.FileType = file.FileType
	}

	msgs := append(s.messages(), msg)
	if err := s.col.Write(messagesCollection, msgs); err != nil {
		log.Println("error writing messages collection:", err)
	}
	return msg
}

// MessagesBetween returns every message exchanged between the two users, in
// insertion order (which is chronological, messages are only appended).
// The result is a fresh snapshot; it does not track later mutations.
func (s *ChatStore) MessagesBetween(user1, user2 string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messagesBetween(user1, user2)
}

func (s *ChatStore) messagesBetween(user1, user2 string) []models.Message {
	return lo.Filter(s.messages(), func(m models.Message, _ int) bool {
		return (m.From == user1 && m.To == user2) || (m.From == user2 && m.To == user1)
	})
}

// MarkMessagesRead flips read=true on every unread message sent from -> to,
// that exact direction only. It persists only when something changed and
// reports whether it did.
func (s *ChatStore) MarkMessagesRead(from, to string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages()
	updated := false
	for i := range msgs {
		if msgs[i].From == from && msgs[i].To == to && !msgs[i].Read {
			msgs[i].Read = true
			updated = true
		}
	}
	if updated {
		if err := s.col.Write(messagesCollection, msgs); err != nil {
			log.Println("error writing messages collection:", err)
		}
	}
	return updated
}

// ChatsForUser returns every chat the user participates in, storage order.
func (s *ChatStore) ChatsForUser(username string) []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatsForUser(username)
}

func (s *ChatStore) chatsForUser(username string) []models.Chat {
	return lo.Filter(s.chats(), func(c models.Chat, _ int) bool {
		return c.Has(username)
	})
}

// EnsureChat creates the chat record for the pair unless one of the user's
// chats already contains the counterpart. The existence check and the insert
// share the store mutex, so concurrent sends for the same pair end up with a
// single chat.
func (s *ChatStore) EnsureChat(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists := lo.ContainsBy(s.chatsForUser(from), func(c models.Chat) bool {
		return c.Has(to)
	})
	if exists {
		return
	}
	chats := append(s.chats(), models.Chat{
		ID:           uuid.NewString(),
		Participants: []string{from, to},
	})
	if err := s.col.Write(chatsCollection, chats); err != nil {
		log.Println("error writing chats collection:", err)
	}
}

// ChatSummaries projects one summary row per chat the user belongs to:
// counterpart name and avatar, last message preview and time, and how many
// messages addressed to the user are still unread. Rows keep the chats'
// storage order; no re-sorting by recency.
func (s *ChatStore) ChatSummaries(username string, avatar func(string) string) []models.ChatSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := []models.ChatSummary{}
	for _, chat := range s.chatsForUser(username) {
		other := chat.Other(username)
		history := s.messagesBetween(username, other)

		summary := models.ChatSummary{
			ID:     chat.ID,
			Name:   other,
			Avatar: avatar(other),
			UnreadCount: lo.CountBy(history, func(m models.Message) bool {
				return m.To == username && !m.Read
			}),
		}
		if len(history) > 0 {
			last := history[len(history)-1]
			summary.LastMessage = last.Text
			ts := last.Timestamp
			summary.LastTime = &ts
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
