package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"speaker-bot/config"
	"speaker-bot/models"
	"speaker-bot/services"
)

type StartSessionRequest struct {
	Language string `json:"language"`
}

type StartSessionResponse struct {
	SessionID   string   `json:"session_id"`
	Greeting    string   `json:"greeting"`
	Suggestions []string `json:"suggestions"`
}

// StartChatSession creates a new widget session with a fresh conversation
// context and returns the opening greeting.
func StartChatSession(c *fiber.Ctx) error {
	// Empty body is fine; the widget may omit it entirely
	var req StartSessionRequest
	_ = c.BodyParser(&req)

	language := normalizeLanguage(req.Language)

	session, err := services.CreateChatSession(c.Context(), language)
	if err != nil {
		slog.Error("Failed to create chat session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	rs := config.Responses(language)
	templates := config.Suggestions(language)

	slog.Info("Chat session started", "sessionID", session.SessionID, "language", language)

	return c.Status(fiber.StatusCreated).JSON(StartSessionResponse{
		SessionID:   session.SessionID,
		Greeting:    rs.Greeting,
		Suggestions: templates.Defaults,
	})
}

type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Language  string `json:"language"`
}

type ChatMessageResponse struct {
	Message     models.ChatMessage         `json:"message"`
	Suggestions []string                   `json:"suggestions"`
	Context     models.ConversationContext `json:"context"`
}

// SendChatMessage runs one conversation turn: classify the message, update
// the context, generate the reply and persist both sides.
func SendChatMessage(c *fiber.Ctx) error {
	var req ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.SessionID == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and message are required",
		})
	}

	if !services.GetChatRateLimiter().Allow(req.SessionID) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many messages, please slow down",
		})
	}

	session, err := services.GetChatSession(c.Context(), req.SessionID)
	if err != nil {
		slog.Error("Failed to load chat session", "error", err, "sessionID", req.SessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	language := normalizeLanguage(req.Language)
	if req.Language == "" {
		language = normalizeLanguage(session.Language)
	}

	result, err := services.GetChatbot().ProcessTurn(req.SessionID, req.Message, language, &session.Context)
	if err != nil {
		if errors.Is(err, services.ErrMessageTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message too long",
			})
		}
		slog.Error("Failed to process message", "error", err, "sessionID", req.SessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	if err := services.SaveMessage(c.Context(), &result.UserMessage); err != nil {
		slog.Error("Failed to save user message", "error", err)
	}
	if err := services.SaveMessage(c.Context(), &result.BotMessage); err != nil {
		slog.Error("Failed to save bot message", "error", err)
	}
	if err := services.SaveChatContext(c.Context(), req.SessionID, result.Context, result.BotMessage.Language); err != nil {
		slog.Error("Failed to save chat context", "error", err, "sessionID", req.SessionID)
	}

	services.GetWebSocketManager().Broadcast(services.BroadcastMessage{
		Type: "chat_turn",
		Data: fiber.Map{
			"session_id":    req.SessionID,
			"user_message":  result.UserMessage.Content,
			"bot_message":   result.BotMessage.Content,
			"language":      result.BotMessage.Language,
			"service":       result.Context.CurrentService,
			"response_type": result.BotMessage.ResponseType,
		},
	})

	return c.JSON(ChatMessageResponse{
		Message:     result.BotMessage,
		Suggestions: result.Suggestions,
		Context:     *result.Context,
	})
}

// ResetChat replaces the session's conversation context with a fresh one.
func ResetChat(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionID is required",
		})
	}

	session, err := services.ResetChatSession(c.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to reset chat session", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset session",
		})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": session.SessionID,
		"context":    session.Context,
	})
}

// GetChatHistory returns the transcript of a widget session so a reloaded
// page can restore the conversation.
func GetChatHistory(c *fiber.Ctx) error {
	sessionID := c.Params("sessionID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "sessionID is required",
		})
	}

	limit := c.QueryInt("limit", 50)

	messages, err := services.GetSessionMessages(c.Context(), sessionID, limit)
	if err != nil {
		slog.Error("Failed to get chat history", "error", err, "sessionID", sessionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get history",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"messages":   messages,
		"count":      len(messages),
	})
}

func normalizeLanguage(lang string) string {
	if lang == config.LangSwahili {
		return config.LangSwahili
	}
	return config.LangEnglish
}
