package domain

import "time"

// Participant is a user taking part in a conversation.
type Participant struct {
	Name      string
	Username  string
	AvatarURL string
}

// LastMessage is the preview shown in the conversation list.
type LastMessage struct {
	Text      string
	Timestamp time.Time
	IsRead    bool
}

// Conversation is one inbox thread with another user.
type Conversation struct {
	ID          string
	Participant Participant
	LastMessage LastMessage
	IsActive    bool
}

// Message is owned by exactly one Conversation.
type Message struct {
	ID        string
	Author    Participant
	Content   string
	Timestamp time.Time
	Sync      SyncState
}
