package models

import "time"

// ChatMessage is a message joined with its sender's profile, as returned by
// the history endpoint.
type ChatMessage struct {
	ID          int       `db:"id" json:"id"`
	SenderID    int       `db:"sender_id" json:"sender_id"`
	MessageType string    `db:"message_type" json:"message_type"`
	Content     string    `db:"content" json:"content"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Username    string    `db:"username" json:"username"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Avatar      string    `db:"avatar" json:"avatar"`
}

// SentMessage is the acknowledgement returned after a send.
type SentMessage struct {
	MessageID int       `json:"message_id"`
	ChatID    int       `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}
