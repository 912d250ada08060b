package domain

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one immutable turn of a mentor conversation. A
// conversation exists only as the conversation_id grouping key over
// messages; ordering within it is by timestamp ascending.
type ChatMessage struct {
	MessageID      string    `gorm:"primaryKey" json:"message_id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	ConversationID string    `gorm:"index;not null" json:"conversation_id"`
	Role           string    `gorm:"not null" json:"role"`
	Content        string    `gorm:"not null" json:"content"`
	Timestamp      time.Time `gorm:"index;not null" json:"timestamp"`
}

func (ChatMessage) TableName() string { return "chat_message" }

// ConversationSummary is the read-side aggregation returned when history
// is requested without a conversation_id. It is recomputed from the
// message table on every call.
type ConversationSummary struct {
	ConversationID string      `json:"conversation_id"`
	LastMessage    ChatMessage `json:"last_message"`
	MessageCount   int64       `json:"message_count"`
}
