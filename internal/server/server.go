package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickcust/quickask/backend/internal/database"
	"github.com/quickcust/quickask/backend/internal/handlers"
	"github.com/quickcust/quickask/backend/internal/middleware"
)

type Server struct {
	db      *database.Database
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create unified handler
	dbService := database.New()
	handler := handlers.NewHandler(dbService.GetDB())

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/register", s.handler.Auth.Register)
		api.POST("/auth/login", s.handler.Auth.Login)
		api.POST("/auth/forgot-password", s.handler.Auth.ForgotPassword)
		api.POST("/auth/reset-password", s.handler.Auth.ResetPassword)

		// Public reads; per-user flags resolve to false without a token
		optional := api.Group("")
		optional.Use(middleware.OptionalAuthMiddleware())
		{
			optional.GET("/questions", s.handler.Question.GetQuestions)
			optional.GET("/questions/:id", s.handler.Question.GetQuestion)
			optional.GET("/questions/:id/answers", s.handler.Question.GetAnswers)
		}

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth protected routes
			protected.POST("/auth/logout", s.handler.Auth.Logout)
			protected.GET("/me", s.handler.Auth.GetMe)

			// User protected routes
			protected.GET("/users/profile", s.handler.User.GetProfile)
			protected.PUT("/users/profile", s.handler.User.UpdateProfile)
			protected.GET("/users/statistics", s.handler.User.GetStatistics)

			// Question protected routes
			protected.POST("/questions", s.handler.Question.CreateQuestion)
			protected.GET("/questions/my/list", s.handler.Question.GetMyQuestions)
			protected.GET("/questions/unanswered/list", s.handler.Question.GetUnansweredQuestions)
			protected.POST("/questions/:id/answers", s.handler.Question.CreateAnswer)
			protected.PUT("/questions/:id", s.handler.Question.UpdateQuestion)
			protected.DELETE("/questions/:id", s.handler.Question.DeleteQuestion)
			protected.POST("/questions/:id/favorite", s.handler.Favorite.ToggleFavorite)

			// Answer protected routes
			protected.GET("/answers/my", s.handler.Answer.GetMyAnswers)
			protected.POST("/answers/:answerId/like", s.handler.Answer.ToggleLike)
			protected.POST("/answers/:answerId/dislike", s.handler.Answer.ToggleDislike)

			// Favorite protected routes
			protected.GET("/favorites", s.handler.Favorite.GetFavorites)
		}
	}

	return r
}
