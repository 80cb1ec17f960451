package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/courier-lite/internal/services"
)

type UserHandler struct {
	sessions *services.SessionService
}

func NewUserHandler(sessions *services.SessionService) *UserHandler {
	return &UserHandler{sessions: sessions}
}

// GetOnlineUsers returns the currently online usernames and their count.
func (h *UserHandler) GetOnlineUsers(c *gin.Context) {
	users := h.sessions.OnlineUsers()

	c.JSON(http.StatusOK, gin.H{
		"online_users": users,
		"online_count": len(users),
	})
}

// GetUsers returns every registered account with its online flag.
func (h *UserHandler) GetUsers(c *gin.Context) {
	statuses, err := h.sessions.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}
