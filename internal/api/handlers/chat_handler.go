package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/chat"
	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/pkg/logger"
)

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req struct {
		Question  string `json:"question"`
		Timeframe string `json:"timeframe"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question is required",
		})
	}

	timeframe, err := insights.ParseTimeframe(req.Timeframe)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "timeframe must be one of week, month, all",
		})
	}

	message, err := h.chat.Ask(question, timeframe)
	if err != nil {
		logger.Error("Failed to answer question", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to answer question",
		})
	}

	return c.JSON(message)
}

func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	history, err := h.chat.History()
	if err != nil {
		logger.Error("Failed to load chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load chat history",
		})
	}

	if history == nil {
		history = []models.ChatMessage{}
	}
	return c.JSON(fiber.Map{
		"messages": history,
	})
}

func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	if err := h.chat.ClearHistory(); err != nil {
		logger.Error("Failed to clear chat history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear chat history",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Chat history cleared",
	})
}
