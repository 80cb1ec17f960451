package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/courier-lite/internal/handlers"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, messageH *handlers.MessageHandler, userH *handlers.UserHandler) {
	// Session endpoints
	r.POST("/register", authH.Register)
	r.POST("/login", authH.Login)
	r.POST("/logout", authH.Logout)
	r.PUT("/update_user", authH.UpdateUser)

	// Messaging endpoints
	r.POST("/send_message", messageH.SendMessage)
	r.GET("/messages", messageH.GetConversation)
	r.GET("/messages/user/:username", messageH.GetSentBy)

	// Directory endpoints
	r.GET("/online_users", userH.GetOnlineUsers)
	r.GET("/users", userH.GetUsers)
}
