package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"speaker-bot/config"
	"speaker-bot/handlers"
	"speaker-bot/middleware"
	"speaker-bot/models"
	"speaker-bot/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Compile and validate the chatbot's pattern tables before accepting
	// traffic; a bad regex or missing English entry must not surface
	// mid-conversation
	if err := services.InitChatbot(); err != nil {
		slog.Error("Invalid chatbot configuration", "error", err)
		os.Exit(1)
	}

	// Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := services.InitMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer db.Disconnect(ctx)

	// Initialize services
	services.InitServices(db, cfg.DatabaseName)

	if err := services.CreateSessionIndexes(ctx); err != nil {
		slog.Error("Failed to create session indexes", "error", err)
		// Continue anyway - the app can still work without indexes
	}

	if err := services.EnsureAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("Failed to ensure admin user", "error", err)
	}

	// Start background cleanup
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	services.StartCleanup(cleanupCtx)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Widget chat endpoints (public)
	chat := app.Group("/api/chat")
	chat.Post("/session", handlers.StartChatSession)
	chat.Post("/message", handlers.SendChatMessage)
	chat.Post("/reset/:sessionID", handlers.ResetChat)
	chat.Get("/history/:sessionID", handlers.GetChatHistory)

	// Auth endpoints
	auth := app.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)
	auth.Get("/me", handlers.GetCurrentUser)

	// Dashboard API endpoints (protected)
	dashboard := app.Group("/api/dashboard", middleware.RequireAuth)
	dashboard.Get("/conversations", handlers.GetConversations)
	dashboard.Get("/conversations/:sessionID", handlers.GetConversationMessages)
	dashboard.Get("/stats", handlers.GetChatStats)

	// Admin-only user provisioning
	dashboard.Post("/users", middleware.RequireRole(models.RoleAdmin), handlers.CreateDashboardUser)

	// WebSocket endpoint (requires authentication)
	dashboard.Get("/ws", handlers.WebSocketUpgrade, websocket.New(handlers.HandleWebSocket))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "speaker-bot",
		})
	})

	// Start server
	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
