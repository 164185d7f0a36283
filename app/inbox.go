package app

import "github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"

// InboxService holds the conversation list and the active thread.
type InboxService interface {
	Conversations() []domain.Conversation
	ActiveID() string

	// SelectConversation makes id the active conversation and returns its
	// messages, discarding anything sent locally to a previous selection.
	SelectConversation(id string) []domain.Message
	Messages() []domain.Message

	// SendMessage appends text to the active conversation. It returns
	// domain.ErrEmptyMessage for blank text and domain.ErrUnknownConversation
	// when conversationID is not the active one.
	SendMessage(conversationID, text string) (domain.Message, error)

	// Search filters the active thread by case-insensitive substring.
	Search(query string) []domain.Message
}
