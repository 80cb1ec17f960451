package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/courier-lite/internal/database"
	"github.com/thereayou/courier-lite/internal/handlers/dto"
	"github.com/thereayou/courier-lite/internal/services"
)

type AuthHandler struct {
	sessions *services.SessionService
}

func NewAuthHandler(sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessions.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, database.ErrAccountExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch err := h.sessions.Login(req.Username, req.Password); {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, services.ErrAlreadyOnline):
		c.JSON(http.StatusConflict, gin.H{"error": "User already logged in"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
	}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.sessions.Logout(req.Username)

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessions.UpdateAccount(req.OldUsername, req.NewUsername, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUpdateFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
