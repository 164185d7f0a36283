package inbox

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

// Store holds the conversation list, the active conversation pointer, and
// the message view for the active conversation.
//
// Selecting a conversation always reloads its seed history. Messages sent
// during an earlier visit are not kept.
type Store struct {
	mu            sync.Mutex
	conversations []domain.Conversation
	seed          map[string][]domain.Message
	activeID      string
	messages      []domain.Message
	clock         func() time.Time
	log           *slog.Logger
}

// NewStore creates a store over seed. A nil clock uses time.Now.
func NewStore(seed Seed, clock func() time.Time, log *slog.Logger) *Store {
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	convs := make([]domain.Conversation, len(seed.Conversations))
	copy(convs, seed.Conversations)
	return &Store{
		conversations: convs,
		seed:          seed.Messages,
		clock:         clock,
		log:           log.With("component", "inbox"),
	}
}

// Conversations returns the conversation list in seed order.
func (s *Store) Conversations() []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// ActiveID returns the selected conversation, or "" before any selection.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Conversation returns the conversation with id.
func (s *Store) Conversation(id string) (domain.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Conversation{}, false
}

// SelectConversation makes id active and replaces the message view with a
// fresh copy of its seed history. An id without history yields an empty view.
func (s *Store) SelectConversation(id string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = id
	for i := range s.conversations {
		s.conversations[i].IsActive = s.conversations[i].ID == id
	}
	history := s.seed[id]
	s.messages = make([]domain.Message, len(history))
	copy(s.messages, history)
	s.log.Debug("conversation selected", "conversation_id", id, "messages", len(s.messages))
	return s.snapshot()
}

// Messages returns the active conversation's message view in insertion order.
func (s *Store) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SendMessage appends a locally authored message to the active
// conversation. Blank text and a conversationID other than the active one
// are rejected without changing anything.
func (s *Store) SendMessage(conversationID, text string) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID == "" || conversationID != s.activeID {
		s.log.Debug("send to inactive conversation ignored", "conversation_id", conversationID, "active_id", s.activeID)
		return domain.Message{}, domain.ErrUnknownConversation
	}

	now := s.clock()
	m := domain.Message{
		ID:        fmt.Sprintf("m%d", now.UnixMilli()),
		Author:    CurrentUser,
		Content:   text,
		Timestamp: now,
		Sync:      domain.SyncLocal,
	}
	s.messages = append(s.messages, m)
	return m, nil
}

// Search filters the message view by a case-insensitive substring. An empty
// query returns every message.
func (s *Store) Search(query string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.snapshot()
	}
	var out []domain.Message
	for _, m := range s.messages {
		if strings.Contains(strings.ToLower(m.Content), q) ||
			strings.Contains(strings.ToLower(m.Author.Name), q) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) snapshot() []domain.Message {
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
