package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/config"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/constants"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/database"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/handlers"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/middleware"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	logRepo := repository.NewLogRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, logRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)
	logService := services.NewLogService(logRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	messageHandler := handlers.NewMessageHandler(messageService)
	logHandler := handlers.NewLogHandler(logService)

	// Initialize Gin router
	r := gin.Default()

	// The dashboard frontend is served from a different origin
	r.Use(cors.Default())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task-Trackr API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", middleware.RequireAuth(), authHandler.Me)

		// User directory
		api.GET("/users", authHandler.ListUsers)

		// Tasks
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Messages
		messages := api.Group("/messages")
		{
			messages.POST("/send", messageHandler.Send)
			messages.GET("", messageHandler.Inbox)
			messages.GET("/sent", messageHandler.Sent)
			messages.PUT("/:id/read", messageHandler.MarkRead)
			messages.GET("/unread_count", messageHandler.UnreadCount)
		}

		// Admin
		admin := api.Group("/admin")
		{
			admin.POST("/tasks", taskHandler.AdminCreateTask)
			admin.GET("/logs", logHandler.ViewLogs)
			admin.GET("/logs/export", logHandler.ExportLogs)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
