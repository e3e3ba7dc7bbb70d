package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"messenger-service/internal/models"
	"messenger-service/internal/repositories"
	"messenger-service/internal/telemetry"
)

// MessagesHandler serves chat listing, history and sending.
type MessagesHandler struct {
	chatRepo    repositories.ChatRepository
	messageRepo repositories.MessageRepository
	audit       *telemetry.AuditEmitter
}

// NewMessagesHandler constructs a MessagesHandler.
func NewMessagesHandler(chatRepo repositories.ChatRepository, messageRepo repositories.MessageRepository, audit *telemetry.AuditEmitter) *MessagesHandler {
	return &MessagesHandler{chatRepo: chatRepo, messageRepo: messageRepo, audit: audit}
}

type sendRequest struct {
	SenderID    int    `json:"sender_id"`
	RecipientID int    `json:"recipient_id"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

// Fetch handles GET /messages. With ?chat_id= it returns the chat's history
// and marks the other party's messages read; without it, the user's chat list.
func (h *MessagesHandler) Fetch(c *gin.Context) {
	userIDStr := c.Query("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	if chatIDStr := c.Query("chat_id"); chatIDStr != "" {
		chatID, err := strconv.Atoi(chatIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat_id"})
			return
		}

		messages, err := h.messageRepo.HistoryAndMarkRead(c.Request.Context(), chatID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
			return
		}
		if messages == nil {
			messages = []models.ChatMessage{}
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages})
		return
	}

	chats, err := h.chatRepo.ListSummaries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chats"})
		return
	}
	if chats == nil {
		chats = []models.ChatSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

// Post handles POST /messages. The only supported action is "send"; a missing
// action defaults to it, anything else is not allowed.
func (h *MessagesHandler) Post(c *gin.Context) {
	var env actionEnvelope
	if err := c.ShouldBindBodyWith(&env, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if env.Action != "" && env.Action != "send" {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
		return
	}

	var req sendRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	content := strings.TrimSpace(req.Content)
	if req.SenderID == 0 || req.RecipientID == 0 || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sender_id, recipient_id and content are required"})
		return
	}
	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}

	sent, err := h.messageRepo.Send(c.Request.Context(), req.SenderID, req.RecipientID, messageType, content)
	if err != nil {
		emitAudit(c, h.audit, "ERROR", "Message send failed", userIDRef(req.SenderID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	emitAudit(c, h.audit, "INFO", "Message sent", userIDRef(req.SenderID))
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message_id": sent.MessageID,
		"chat_id":    sent.ChatID,
		"created_at": sent.CreatedAt,
	})
}
