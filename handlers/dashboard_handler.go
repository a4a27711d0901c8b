package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"speaker-bot/services"
)

// GetConversations lists widget sessions for the dashboard, newest activity
// first, with pagination.
func GetConversations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	skip := c.QueryInt("skip", 0)

	sessions, total, err := services.ListChatSessions(c.Context(), limit, skip)
	if err != nil {
		slog.Error("Failed to list chat sessions", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list conversations",
		})
	}

	return c.JSON(fiber.Map{
		"conversations": sessions,
		"total":         total,
		"limit":         limit,
		"skip":          skip,
	})
}

// GetConversationMessages returns one visitor's full transcript.
func GetConversationMessages(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionID is required",
		})
	}

	limit := c.QueryInt("limit", 100)

	messages, err := services.GetSessionMessages(c.Context(), sessionID, limit)
	if err != nil {
		slog.Error("Failed to get conversation messages", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get messages",
		})
	}

	session, err := services.GetChatSession(c.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to get chat session", "error", err, "sessionID", sessionID)
	}

	return c.JSON(fiber.Map{
		"session":  session,
		"messages": messages,
	})
}

// GetChatStats returns aggregate counters for the dashboard overview.
func GetChatStats(c *fiber.Ctx) error {
	totalMessages, err := services.CountMessages(c.Context(), "")
	if err != nil {
		slog.Error("Failed to count messages", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get stats",
		})
	}

	userMessages, err := services.CountMessages(c.Context(), "user")
	if err != nil {
		slog.Error("Failed to count user messages", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get stats",
		})
	}

	serviceBreakdown, err := services.ServiceBreakdown(c.Context())
	if err != nil {
		slog.Error("Failed to get service breakdown", "error", err)
		serviceBreakdown = nil
	}

	languageBreakdown, err := services.LanguageBreakdown(c.Context())
	if err != nil {
		slog.Error("Failed to get language breakdown", "error", err)
		languageBreakdown = nil
	}

	return c.JSON(fiber.Map{
		"total_messages":     totalMessages,
		"user_messages":      userMessages,
		"service_breakdown":  serviceBreakdown,
		"language_breakdown": languageBreakdown,
		"connected_clients":  services.GetWebSocketManager().ConnectionCount(),
	})
}
