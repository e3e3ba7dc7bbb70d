package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"messenger-service/internal/models"
)

// historyLimit caps how much of a chat's tail a single fetch returns.
const historyLimit = 100

// MessageRepository defines interactions for chat messages.
type MessageRepository interface {
	Send(ctx context.Context, senderID int, recipientID int, messageType string, content string) (models.SentMessage, error)
	HistoryAndMarkRead(ctx context.Context, chatID int, viewerID int) ([]models.ChatMessage, error)
}

// MessageRepo is a sqlx-backed repository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// Send resolves the chat for the sender/recipient pair, stores the message and
// bumps the sender's last_seen, all in one transaction.
func (r *MessageRepo) Send(ctx context.Context, senderID int, recipientID int, messageType string, content string) (models.SentMessage, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.SentMessage{}, err
	}
	defer tx.Rollback()

	chatID, err := resolveChat(ctx, tx, senderID, recipientID)
	if err != nil {
		return models.SentMessage{}, err
	}

	var sent models.SentMessage
	sent.ChatID = chatID
	if err := tx.QueryRowxContext(ctx,
		`INSERT INTO messages (chat_id, sender_id, message_type, content) VALUES ($1, $2, $3, $4)
         RETURNING id, created_at`, chatID, senderID, messageType, content).
		Scan(&sent.MessageID, &sent.CreatedAt); err != nil {
		return models.SentMessage{}, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET last_seen = NOW() WHERE id = $1`, senderID); err != nil {
		return models.SentMessage{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.SentMessage{}, err
	}
	return sent, nil
}

// HistoryAndMarkRead returns the chat's messages in ascending creation order
// and marks every returned message not authored by the viewer as read. Fetch
// and update share a transaction so the rows marked read are exactly the rows
// returned; a message arriving in between stays unread until it is seen.
func (r *MessageRepo) HistoryAndMarkRead(ctx context.Context, chatID int, viewerID int) ([]models.ChatMessage, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var msgs []models.ChatMessage
	query := `SELECT m.id, m.sender_id, m.message_type, m.content, m.created_at, m.is_read,
            u.username, u.display_name, u.avatar
        FROM messages m
        JOIN users u ON u.id = m.sender_id
        WHERE m.chat_id = $1
        ORDER BY m.created_at ASC
        LIMIT $2`
	if err := tx.SelectContext(ctx, &msgs, query, chatID, historyLimit); err != nil {
		return nil, err
	}

	unread := make([]int, 0, len(msgs))
	for _, m := range msgs {
		if m.SenderID != viewerID && !m.IsRead {
			unread = append(unread, m.ID)
		}
	}
	if len(unread) > 0 {
		if _, err := tx.ExecContext(ctx, `UPDATE messages SET is_read = TRUE WHERE id = ANY($1)`, pq.Array(unread)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return msgs, nil
}
