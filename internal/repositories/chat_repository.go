package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"messenger-service/internal/models"
)

// ChatRepository abstracts chat persistence.
type ChatRepository interface {
	ResolveChat(ctx context.Context, userID int, otherID int) (int, error)
	ListSummaries(ctx context.Context, userID int) ([]models.ChatSummary, error)
}

// ChatRepo is a sqlx implementation of ChatRepository.
type ChatRepo struct {
	db *sqlx.DB
}

// NewChatRepo constructs a ChatRepo.
func NewChatRepo(db *sqlx.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// resolveChat returns the chat id for the user pair, inserting the row when
// absent. The pair is normalized to ascending order before touching the table,
// so (a, b) and (b, a) always land on the same row, and the single upsert
// keeps two concurrent first sends from creating duplicates.
func resolveChat(ctx context.Context, q sqlx.QueryerContext, userID int, otherID int) (int, error) {
	lo, hi := normalizePair(userID, otherID)

	var chatID int
	err := sqlx.GetContext(ctx, q, &chatID,
		`INSERT INTO chats (user1_id, user2_id) VALUES ($1, $2)
         ON CONFLICT (user1_id, user2_id) DO UPDATE SET user1_id = EXCLUDED.user1_id
         RETURNING id`, lo, hi)
	return chatID, err
}

// normalizePair orders a participant pair ascending so chat lookups are
// independent of argument order.
func normalizePair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// ResolveChat finds or creates the unique chat for the unordered user pair.
func (r *ChatRepo) ResolveChat(ctx context.Context, userID int, otherID int) (int, error) {
	return resolveChat(ctx, r.db, userID, otherID)
}

// ListSummaries returns one annotated row per chat the user participates in,
// ordered by most recent message first. Chats without messages sort last.
func (r *ChatRepo) ListSummaries(ctx context.Context, userID int) ([]models.ChatSummary, error) {
	query := `SELECT c.id AS chat_id,
            CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END AS other_user_id,
            u.username, u.display_name, u.avatar,
            (NOW() - u.last_seen) < INTERVAL '5 minutes' AS online,
            (SELECT content FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message,
            (SELECT created_at FROM messages WHERE chat_id = c.id ORDER BY created_at DESC LIMIT 1) AS last_message_time,
            (SELECT COUNT(*) FROM messages WHERE chat_id = c.id AND sender_id <> $1 AND is_read = FALSE) AS unread_count
        FROM chats c
        JOIN users u ON u.id = CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END
        WHERE c.user1_id = $1 OR c.user2_id = $1
        ORDER BY last_message_time DESC NULLS LAST`

	var summaries []models.ChatSummary
	err := r.db.SelectContext(ctx, &summaries, query, userID)
	return summaries, err
}
