package inbox

import (
	"time"

	"github.com/Nguyen-Van-Truong/fe-hoan-hao/domain"
)

const avatarBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// CurrentUser authors every message sent from this client.
var CurrentUser = domain.Participant{
	Name:      "Current User",
	Username:  "currentuser",
	AvatarURL: avatarBase + "CurrentUser",
}

var (
	janeDoe      = domain.Participant{Name: "Jane Doe", Username: "janedoe", AvatarURL: avatarBase + "Jane"}
	johnSmith    = domain.Participant{Name: "John Smith", Username: "johnsmith", AvatarURL: avatarBase + "John"}
	sarahJohnson = domain.Participant{Name: "Sarah Johnson", Username: "sarahj", AvatarURL: avatarBase + "Sarah"}
	michaelChen  = domain.Participant{Name: "Michael Chen", Username: "mikechen", AvatarURL: avatarBase + "Michael"}
)

// Seed is the fixed conversation set and each conversation's message history.
type Seed struct {
	Conversations []domain.Conversation
	Messages      map[string][]domain.Message
}

// SeedData builds the session's seed relative to now.
func SeedData(now time.Time) Seed {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	msg := func(id string, from domain.Participant, content string, d time.Duration) domain.Message {
		return domain.Message{ID: id, Author: from, Content: content, Timestamp: ago(d)}
	}
	const day = 24 * time.Hour

	return Seed{
		Conversations: []domain.Conversation{
			{
				ID:          "c1",
				Participant: janeDoe,
				LastMessage: domain.LastMessage{Text: "Hey, how are you doing today?", Timestamp: ago(30 * time.Minute)},
				IsActive:    true,
			},
			{
				ID:          "c2",
				Participant: johnSmith,
				LastMessage: domain.LastMessage{Text: "Did you see the new movie that just came out?", Timestamp: ago(2 * time.Hour), IsRead: true},
			},
			{
				ID:          "c3",
				Participant: sarahJohnson,
				LastMessage: domain.LastMessage{Text: "Thanks for the help with the project!", Timestamp: ago(day), IsRead: true},
			},
			{
				ID:          "c4",
				Participant: michaelChen,
				LastMessage: domain.LastMessage{Text: "Let's meet up for coffee next week!", Timestamp: ago(2 * day), IsRead: true},
			},
		},
		Messages: map[string][]domain.Message{
			"c1": {
				msg("m1", janeDoe, "Hey there! How's your day going?", 2*time.Hour),
				msg("m2", CurrentUser, "Hi Jane! It's going pretty well, thanks for asking. Just working on some new features for the app.", 90*time.Minute),
				msg("m3", janeDoe, "That sounds exciting! What kind of features are you working on?", time.Hour),
				msg("m4", CurrentUser, "I'm adding a new messaging system with better media sharing.", 45*time.Minute),
				msg("m5", janeDoe, "That sounds really cool! I'd love to test it out when it's ready.", 30*time.Minute),
			},
			"c2": {
				msg("m6", johnSmith, "Did you see the new movie that just came out?", 2*time.Hour),
				msg("m7", CurrentUser, "Not yet! Is it good?", 108*time.Minute),
			},
			"c3": {
				msg("m8", sarahJohnson, "Thanks for the help with the project!", day),
			},
			"c4": {
				msg("m9", michaelChen, "Let's meet up for coffee next week!", 2*day),
				msg("m10", CurrentUser, "Sounds good! How about Tuesday at 2pm?", 36*time.Hour),
				msg("m11", michaelChen, "Perfect! See you then at the usual place.", day),
			},
		},
	}
}
