package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is an immutable record of one direct message. Only IsRead ever
// changes after creation, and only from false to true.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
	IsRead     bool      `json:"is_read"`
}

// ConversationSummary is one row of a user's conversation list. It is
// derived from the message table on every request and never persisted, so
// the unread count cannot drift from the stored messages.
type ConversationSummary struct {
	CounterpartID   uuid.UUID `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	LastMessageBody string    `json:"last_message_body"`
	LastMessageAt   time.Time `json:"last_message_at"`
	UnreadCount     int       `json:"unread_count"`
}

// ConversationView is the result of opening one conversation: the
// counterpart's profile summary plus the full thread, oldest first.
type ConversationView struct {
	Counterpart *ProfileSummary `json:"counterpart"`
	Messages    []*Message      `json:"messages"`
}
