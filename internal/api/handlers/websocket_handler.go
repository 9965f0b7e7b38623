package handlers

import (
	"strings"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/lifeboard/backend/internal/chat"
	"github.com/lifeboard/backend/internal/insights"
	"github.com/lifeboard/backend/pkg/logger"
)

type WebSocketHandler struct {
	chat *chat.Service
}

func NewWebSocketHandler(chatService *chat.Service) *WebSocketHandler {
	return &WebSocketHandler{chat: chatService}
}

// HandleConnection serves one chat connection: each incoming question is
// answered and streamed back word by word, followed by a complete frame
// carrying the persisted message.
func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type      string `json:"type"`
			Content   string `json:"content"`
			Timeframe string `json:"timeframe"`
		}

		if err := c.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		if msg.Type != "question" {
			continue
		}

		if err := h.streamAnswer(c, msg.Content, msg.Timeframe); err != nil {
			logger.Error("Failed to stream answer", zap.Error(err))
			h.sendError(c, "Failed to answer question")
		}
	}
}

func (h *WebSocketHandler) streamAnswer(c *websocket.Conn, question, timeframeValue string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		h.sendError(c, "Question is required")
		return nil
	}

	timeframe, err := insights.ParseTimeframe(timeframeValue)
	if err != nil {
		h.sendError(c, "timeframe must be one of week, month, all")
		return nil
	}

	if err := h.sendFrame(c, "status", "Analyzing your data..."); err != nil {
		return err
	}

	message, err := h.chat.Ask(question, timeframe)
	if err != nil {
		return err
	}

	words := strings.Fields(message.Content)
	for i, word := range words {
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}
		if err := h.sendFrame(c, "chunk", chunk); err != nil {
			return err
		}
	}

	return c.WriteJSON(map[string]any{
		"type":    "complete",
		"message": message,
	})
}

func (h *WebSocketHandler) sendFrame(c *websocket.Conn, frameType, content string) error {
	return c.WriteJSON(map[string]any{
		"type":    frameType,
		"content": content,
	})
}

func (h *WebSocketHandler) sendError(c *websocket.Conn, errorMsg string) {
	c.WriteJSON(map[string]any{
		"type":  "error",
		"error": errorMsg,
	})
}
