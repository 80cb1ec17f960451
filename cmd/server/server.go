package server

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/thereayou/courier-lite/internal/database"
	"github.com/thereayou/courier-lite/internal/handlers"
	"github.com/thereayou/courier-lite/internal/middleware"
	"github.com/thereayou/courier-lite/internal/presence"
	"github.com/thereayou/courier-lite/internal/services"
	"github.com/thereayou/courier-lite/pkg/auth"
	"github.com/thereayou/courier-lite/pkg/clock"
)

type Server struct {
	Router   *gin.Engine
	DB       *database.Database
	Registry *presence.Registry
	Sessions *services.SessionService
	AuthH    *handlers.AuthHandler
	MessageH *handlers.MessageHandler
	UserH    *handlers.UserHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	registry := presence.NewRegistry()
	scheme := auth.SchemeFromName(os.Getenv("PASSWORD_SCHEME"))
	sessions := services.NewSessionService(dbConn, registry, scheme)

	authH := handlers.NewAuthHandler(sessions)
	messageH := handlers.NewMessageHandler(dbConn, clock.System{})
	userH := handlers.NewUserHandler(sessions)

	router := gin.Default()
	router.Use(middleware.RequestID())
	APIEndpoints(router, authH, messageH, userH)

	return &Server{
		Router:   router,
		DB:       dbConn,
		Registry: registry,
		Sessions: sessions,
		AuthH:    authH,
		MessageH: messageH,
		UserH:    userH,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
