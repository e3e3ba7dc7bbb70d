package models

import "time"

// ChatSummary is one row of a user's chat list: the other participant plus
// last-message and unread annotations. LastMessage and LastMessageTime are
// null for chats with no messages yet.
type ChatSummary struct {
	ChatID          int        `db:"chat_id" json:"chat_id"`
	OtherUserID     int        `db:"other_user_id" json:"other_user_id"`
	Username        string     `db:"username" json:"username"`
	DisplayName     string     `db:"display_name" json:"display_name"`
	Avatar          string     `db:"avatar" json:"avatar"`
	Online          bool       `db:"online" json:"online"`
	LastMessage     *string    `db:"last_message" json:"last_message"`
	LastMessageTime *time.Time `db:"last_message_time" json:"last_message_time"`
	UnreadCount     int        `db:"unread_count" json:"unread_count"`
}
