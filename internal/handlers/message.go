package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/courier-lite/internal/database"
	"github.com/thereayou/courier-lite/internal/handlers/dto"
	"github.com/thereayou/courier-lite/internal/models"
	"github.com/thereayou/courier-lite/pkg/clock"
)

type MessageHandler struct {
	db    *database.Database
	clock clock.Clock
}

func NewMessageHandler(db *database.Database, clk clock.Clock) *MessageHandler {
	return &MessageHandler{db: db, clock: clk}
}

// SendMessage appends a message. Sender and receiver are taken as-is;
// nothing checks that they are registered accounts.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := &models.Message{
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		Content:   req.Content,
		Timestamp: h.clock.Now(),
	}

	if err := h.db.SaveMessage(message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": message.ID})
}

// GetConversation returns the thread between ?user= and ?peer=, newest first.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	user := c.Query("user")
	peer := c.Query("peer")
	if user == "" || peer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user and peer parameters are required"})
		return
	}

	messages, err := h.db.Conversation(user, peer, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, formatMessages(messages))
}

// GetSentBy returns messages sent by the user in the path, newest first.
func (h *MessageHandler) GetSentBy(c *gin.Context) {
	username := c.Param("username")

	messages, err := h.db.SentBy(username, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get messages"})
		return
	}

	c.JSON(http.StatusOK, formatMessages(messages))
}

func parseLimit(c *gin.Context) int {
	limit := database.DefaultHistoryLimit
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	return limit
}

func formatMessages(messages []models.Message) []dto.MessageResponse {
	result := make([]dto.MessageResponse, len(messages))
	for i, msg := range messages {
		result[i] = dto.MessageResponse{
			Sender:    msg.Sender,
			Receiver:  msg.Receiver,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
	}
	return result
}
